package store

// Compose chains middleware into a single stage.
// Every stage is built with the handle first, in the order given, and then
// wrapped right-to-left so that mws[0] is the outermost stage.
func Compose[A, S any](mws ...Middleware[A, S]) Middleware[A, S] {
	return func(h Handle[A, S]) func(Next[A]) Next[A] {
		wrappers := make([]func(Next[A]) Next[A], 0, len(mws))
		for _, mw := range mws {
			wrappers = append(wrappers, mw(h))
		}
		return func(next Next[A]) Next[A] {
			for i := len(wrappers) - 1; i >= 0; i-- {
				next = wrappers[i](next)
			}
			return next
		}
	}
}
