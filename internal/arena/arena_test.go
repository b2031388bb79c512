package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigmundgranaas/petty/internal/style"
)

func TestInternStyleReturnsSamePointerForEqualValues(t *testing.T) {
	a := New()
	cs := style.Default()

	first := a.InternStyle(cs)
	second := a.InternStyle(cs)

	assert.Same(t, first, second)
	assert.Equal(t, 1, a.Len())
}

func TestInternStyleDistinguishesDifferentValues(t *testing.T) {
	a := New()
	base := style.Default()
	bold := base
	bold.FontWeight = style.WeightBold

	firstPtr := a.InternStyle(base)
	secondPtr := a.InternStyle(bold)

	assert.NotSame(t, firstPtr, secondPtr)
	assert.Equal(t, 2, a.Len())
}

func TestNewArenaStartsEmpty(t *testing.T) {
	assert.Equal(t, 0, New().Len())
}
