// Package tap provides a pass-through middleware that observes dispatched actions.
//
// A tap forwards every action to the next stage unchanged. Only after that
// stage returns does it run a selector over the action, and if the selected
// value is truthy it hands the value, the action and the fresh store state to
// a callback. The dispatch result is returned untouched on every path.
//
// A nil selector disables the tap. Falsy selections (nil, false, zero
// numbers, NaN, the empty string, nil references) are skipped. Panics raised
// by the selector or the callback propagate to whoever called Dispatch.
//
// Example:
//
//	mw := tap.Middleware(
//	    tap.SelectMeta[string]("analytics"),
//	    func(event *string, action store.Action, state AppState) {
//	        track(*event, state.UserID)
//	    },
//	)
//	s, err := store.New(reducer, initial, mw)
package tap
