package executor

// SyncExecutor runs every task sequentially on the calling goroutine,
// with no threading overhead. It's the default for single-document
// CLI use, where there is only one document to build anyway.
type SyncExecutor struct{}

// NewSyncExecutor returns a SyncExecutor.
func NewSyncExecutor() *SyncExecutor { return &SyncExecutor{} }

// Run implements Executor.
func (SyncExecutor) Run(n int, task func(i int)) {
	for i := 0; i < n; i++ {
		task(i)
	}
}

// Parallelism implements Executor.
func (SyncExecutor) Parallelism() int { return 1 }

// Name implements Executor.
func (SyncExecutor) Name() string { return "SyncExecutor" }
