// Package executor abstracts how independent document builds are fanned
// out, grounded directly on crates/executor/src/lib.rs and
// petty-core/src/traits/executor.rs's Executor trait. Go methods
// can't carry their own type parameters the way the Rust trait's
// execute_all<T, R, F> does, so the interface exposes one
// non-generic primitive, Run, and ExecuteAll/ExecuteAllFallible are
// free generic functions built on top of it.
package executor

// Executor runs n independent calls of a task, distributing them
// according to its own parallelism strategy, and returns once every
// call has completed.
type Executor interface {
	Run(n int, task func(i int))
	// Parallelism reports the level of concurrency this executor can
	// provide: 1 for sequential executors, otherwise a worker count.
	Parallelism() int
	// Name is a human-readable identifier for logging.
	Name() string
}

// Outcome pairs a result with an error, standing in for Rust's
// Result<R, E> in ExecuteAllFallible's return slice.
type Outcome[R any] struct {
	Value R
	Err   error
}

// ExecuteAll applies f to every item via e, returning results in the
// same order as items (matching Executor::execute_all).
func ExecuteAll[T, R any](e Executor, items []T, f func(T) R) []R {
	results := make([]R, len(items))
	e.Run(len(items), func(i int) {
		results[i] = f(items[i])
	})
	return results
}

// ExecuteAllFallible applies f to every item via e, collecting each
// call's error alongside its result rather than aborting the batch on
// the first failure (matching Executor::execute_all_fallible).
func ExecuteAllFallible[T, R any](e Executor, items []T, f func(T) (R, error)) []Outcome[R] {
	results := make([]Outcome[R], len(items))
	e.Run(len(items), func(i int) {
		v, err := f(items[i])
		results[i] = Outcome[R]{Value: v, Err: err}
	})
	return results
}
