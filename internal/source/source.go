// Package source abstracts where per-document data records come from,
// grounded directly on crates/source/src/lib.rs: an in-memory slice,
// a pull-based iterator function, or a channel, so the executor and
// batch driver in pkg/api can fan a single pipeline out over any of
// them without caring which.
package source

// DataSource feeds data records (decoded JSON-like values, typically
// map[string]any) into the pipeline one at a time.
type DataSource interface {
	// Next returns the next record, or ok=false once the source is
	// exhausted.
	Next() (any, bool)
	// SizeHint reports the total number of records, when known.
	SizeHint() (int, bool)
	// HasKnownSize reports whether SizeHint has an answer.
	HasKnownSize() bool
}
