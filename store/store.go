package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ Handle[Action, any] = (*Store[Action, any])(nil)

// Store is a synchronous, reducer-driven state container.
//
// Reductions are serialized under the store lock. Middleware stages run on
// the caller's goroutine, so the "state after my action" guarantee a stage
// relies on holds for callers that dispatch from a single goroutine.
type Store[A, S any] struct {
	id      string
	logger  *zap.Logger
	reducer Reducer[A, S]

	mu    sync.RWMutex
	state S

	subsMu sync.Mutex
	subs   []subscription

	dispatch Next[A]
}

type subscription struct {
	id       string
	listener func()
}

// New creates a store with the default config and installs mws around its
// base dispatch. mws[0] is the outermost stage.
func New[A, S any](reducer Reducer[A, S], initial S, mws ...Middleware[A, S]) (*Store[A, S], error) {
	return NewWithConfig(NewConfig(nil), reducer, initial, mws...)
}

// NewWithConfig is New with an explicit config.
func NewWithConfig[A, S any](
	config Config,
	reducer Reducer[A, S],
	initial S,
	mws ...Middleware[A, S],
) (*Store[A, S], error) {
	if reducer == nil {
		return nil, ErrNilReducer
	}
	config = NewConfig(config.Logger)

	s := &Store[A, S]{
		id:      uuid.New().String(),
		logger:  config.Logger,
		reducer: reducer,
		state:   initial,
	}

	s.dispatch = func(action A) any {
		panic(fmt.Errorf("%w: store %s", ErrDispatchDuringConstruction, s.id))
	}
	s.dispatch = Compose(mws...)(s)(s.baseDispatch)

	s.logger.Debug("store created",
		zap.String("storeId", s.id),
		zap.Int("numMiddleware", len(mws)),
	)
	return s, nil
}

// ID returns the unique id of the store, used to tell stores apart in logs.
func (s *Store[A, S]) ID() string { return s.id }

// GetState returns the current state.
func (s *Store[A, S]) GetState() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch sends action through the middleware chain to the reducer and
// returns whatever the outermost stage returns.
func (s *Store[A, S]) Dispatch(action A) any {
	return s.dispatch(action)
}

// Subscribe registers listener to run after every reduction.
// Listeners run in subscription order, outside the store lock.
// The returned function removes the listener; calling it again is a no-op.
func (s *Store[A, S]) Subscribe(listener func()) (unsubscribe func()) {
	if listener == nil {
		panic(fmt.Errorf("%w: store %s", ErrNilListener, s.id))
	}
	sub := subscription{id: uuid.New().String(), listener: listener}

	s.subsMu.Lock()
	s.subs = append(s.subs, sub)
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			defer s.subsMu.Unlock()
			s.subs = slices.DeleteFunc(slices.Clone(s.subs), func(cur subscription) bool {
				return cur.id == sub.id
			})
		})
	}
}

// baseDispatch is the innermost stage: reduce, then notify.
func (s *Store[A, S]) baseDispatch(action A) any {
	s.reduce(action)

	s.logger.Debug("action reduced",
		zap.String("storeId", s.id),
		zap.Any("action", action),
	)

	s.subsMu.Lock()
	subs := slices.Clone(s.subs)
	s.subsMu.Unlock()

	for _, sub := range subs {
		sub.listener()
	}
	return action
}

// reduce applies the reducer under the store lock.
// A panicking reducer leaves the state unchanged and the lock released.
func (s *Store[A, S]) reduce(action A) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.reducer(s.state, action)
}
