package tap

import "github.com/on-the-ground/tap_ive_go/store"

// Selector extracts a value of interest from an action.
type Selector[A, V any] func(action A) V

// Callback receives a truthy selection together with the action that
// produced it and the state after that action was reduced.
type Callback[A, S, V any] func(selected V, action A, state S)

var _ store.Interceptor[store.Action, any] = (*Tap[store.Action, any, any])(nil)

// Tap is a stateless interceptor. It is safe to install in any number of stores.
type Tap[A, S, V any] struct {
	selector Selector[A, V]
	callback Callback[A, S, V]
}

// New builds a tap. A nil selector yields a tap that only forwards actions.
func New[A, S, V any](selector Selector[A, V], callback Callback[A, S, V]) *Tap[A, S, V] {
	return &Tap[A, S, V]{
		selector: selector,
		callback: callback,
	}
}

// Middleware builds a tap and curries it into a store middleware.
func Middleware[A, S, V any](selector Selector[A, V], callback Callback[A, S, V]) store.Middleware[A, S] {
	return New(selector, callback).Middleware()
}

func (t *Tap[A, S, V]) Middleware() store.Middleware[A, S] {
	return store.MiddlewareOf[A, S](t)
}

// Intercept forwards action to next, then runs the selector and, for truthy
// selections, the callback. It always returns next's result.
func (t *Tap[A, S, V]) Intercept(h store.Handle[A, S], next store.Next[A], action A) any {
	returnValue := next(action)

	if t.selector == nil {
		return returnValue
	}

	selected := t.selector(action)
	if !Truthy(selected) {
		return returnValue
	}

	// state is read after next so the callback sees the reduced state
	t.callback(selected, action, h.GetState())

	return returnValue
}
