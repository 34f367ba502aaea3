package tap

import (
	"github.com/on-the-ground/tap_ive_go/shared/helper"
	"github.com/on-the-ground/tap_ive_go/store"
)

// SelectorOf converts an arbitrary configuration value into a selector.
// Anything that is not a func(A) V (or a Selector[A, V]) yields nil, which
// disables the tap instead of failing.
func SelectorOf[A, V any](v any) Selector[A, V] {
	switch fn := v.(type) {
	case Selector[A, V]:
		return fn
	case func(A) V:
		return fn
	default:
		return nil
	}
}

// SelectMeta selects action.Meta[key] as a *T.
// It selects nil, so the tap skips the action, when the key is missing,
// holds another type, or holds a falsy value such as "" or 0.
func SelectMeta[T any](key string) Selector[store.Action, *T] {
	return func(action store.Action) *T {
		v, ok := helper.LookupAs[T](action.Meta, key)
		if !ok || !Truthy(v) {
			return nil
		}
		return &v
	}
}
