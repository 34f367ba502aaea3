package store

// Action is the default action record for stores that have no action type of their own.
// Meta carries data for middleware and is never read by reducers in this package.
type Action struct {
	Type    string
	Payload any
	Meta    map[string]any
}

// Reducer computes the next state from the current state and an action.
type Reducer[A, S any] func(state S, action A) S

// Handle is the view of a store that middleware stages receive.
type Handle[A, S any] interface {
	GetState() S
	Dispatch(action A) any
}

// Next is the continuation a middleware stage forwards actions to.
type Next[A any] func(action A) any

// Middleware is a curried pipeline stage: (store) -> (next) -> (action) -> result.
type Middleware[A, S any] func(Handle[A, S]) func(Next[A]) Next[A]

// Interceptor is a pipeline stage written as a single method instead of nested closures.
type Interceptor[A, S any] interface {
	Intercept(h Handle[A, S], next Next[A], action A) any
}

// MiddlewareOf curries an Interceptor into a Middleware.
func MiddlewareOf[A, S any](i Interceptor[A, S]) Middleware[A, S] {
	return func(h Handle[A, S]) func(Next[A]) Next[A] {
		return func(next Next[A]) Next[A] {
			return func(action A) any {
				return i.Intercept(h, next, action)
			}
		}
	}
}
