package source

// SliceSource is a DataSource backed by an in-memory slice, the Go
// analogue of VecDataSource: the simplest source, for small datasets
// or tests.
type SliceSource struct {
	data  []any
	index int
}

// NewSliceSource wraps data as a DataSource.
func NewSliceSource(data []any) *SliceSource {
	return &SliceSource{data: data}
}

// Len returns the total number of records.
func (s *SliceSource) Len() int { return len(s.data) }

// Remaining returns the number of records not yet consumed.
func (s *SliceSource) Remaining() int { return len(s.data) - s.index }

// Next implements DataSource.
func (s *SliceSource) Next() (any, bool) {
	if s.index >= len(s.data) {
		return nil, false
	}
	item := s.data[s.index]
	s.index++
	return item, true
}

// SizeHint implements DataSource.
func (s *SliceSource) SizeHint() (int, bool) { return len(s.data), true }

// HasKnownSize implements DataSource.
func (s *SliceSource) HasKnownSize() bool { return true }
