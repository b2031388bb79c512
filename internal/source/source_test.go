package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(s DataSource) []any {
	var out []any
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestSliceSourceDrainsInOrderAndReportsSize(t *testing.T) {
	s := NewSliceSource([]any{1, 2, 3})
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.HasKnownSize())

	size, ok := s.SizeHint()
	assert.True(t, ok)
	assert.Equal(t, 3, size)
	assert.Equal(t, 3, s.Remaining())

	assert.Equal(t, []any{1, 2, 3}, drain(s))
	assert.Equal(t, 0, s.Remaining())

	_, ok = s.Next()
	assert.False(t, ok)
}

func TestIteratorSourceWrapsPullFunction(t *testing.T) {
	values := []any{"a", "b"}
	i := 0
	s := NewIteratorSource(func() (any, bool) {
		if i >= len(values) {
			return nil, false
		}
		v := values[i]
		i++
		return v, true
	}, 2, true)

	assert.True(t, s.HasKnownSize())
	size, ok := s.SizeHint()
	assert.True(t, ok)
	assert.Equal(t, 2, size)
	assert.Equal(t, []any{"a", "b"}, drain(s))
}

func TestIteratorSourceWithoutSizeHint(t *testing.T) {
	s := NewIteratorSource(func() (any, bool) { return nil, false }, 0, false)
	assert.False(t, s.HasKnownSize())
	_, ok := s.SizeHint()
	assert.False(t, ok)
}

func TestChannelSourceDrainsUntilClose(t *testing.T) {
	ch := make(chan any, 2)
	ch <- 1
	ch <- 2
	close(ch)

	s := NewChannelSource(ch)
	assert.False(t, s.HasKnownSize())
	_, ok := s.SizeHint()
	assert.False(t, ok)
	assert.Equal(t, []any{1, 2}, drain(s))
}
