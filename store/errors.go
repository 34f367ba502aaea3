package store

import "fmt"

var (
	// ErrNilReducer is returned by New when no reducer is given.
	ErrNilReducer = fmt.Errorf("reducer must not be nil")

	// ErrNilListener is raised by Subscribe for a nil listener.
	ErrNilListener = fmt.Errorf("listener must not be nil")

	// ErrDispatchDuringConstruction is raised when a middleware stage dispatches
	// while the chain is still being built. Other stages would not see the action.
	ErrDispatchDuringConstruction = fmt.Errorf("dispatching while constructing middleware is not allowed")
)
