package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDimensionVariants(t *testing.T) {
	assert.Equal(t, Auto, ParseDimension(""))
	assert.Equal(t, Auto, ParseDimension("auto"))
	assert.Equal(t, Percent(33), ParseDimension("33%"))
	assert.Equal(t, Pt(12), ParseDimension("12pt"))
	assert.Equal(t, Pt(12), ParseDimension("12px"))
	assert.Equal(t, Pt(8), ParseDimension("8"))
	assert.Equal(t, Auto, ParseDimension("not-a-number"))
}

func TestDimensionResolve(t *testing.T) {
	v, ok := Pt(10).Resolve(200)
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	v, ok = Percent(50).Resolve(200)
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)

	_, ok = Auto.Resolve(200)
	assert.False(t, ok)
}

func TestParseBoxShorthandOneValue(t *testing.T) {
	top, right, bottom, left := parseBoxShorthand("10pt", 100, 0)
	assert.Equal(t, 10.0, top)
	assert.Equal(t, 10.0, right)
	assert.Equal(t, 10.0, bottom)
	assert.Equal(t, 10.0, left)
}

func TestParseBoxShorthandTwoValues(t *testing.T) {
	top, right, bottom, left := parseBoxShorthand("5pt 10pt", 100, 0)
	assert.Equal(t, 5.0, top)
	assert.Equal(t, 10.0, right)
	assert.Equal(t, 5.0, bottom)
	assert.Equal(t, 10.0, left)
}

func TestParseBoxShorthandFourValues(t *testing.T) {
	top, right, bottom, left := parseBoxShorthand("1pt 2pt 3pt 4pt", 100, 0)
	assert.Equal(t, 1.0, top)
	assert.Equal(t, 2.0, right)
	assert.Equal(t, 3.0, bottom)
	assert.Equal(t, 4.0, left)
}

func TestParseBoxShorthandEmptyUsesDefault(t *testing.T) {
	top, right, bottom, left := parseBoxShorthand("", 100, 7)
	assert.Equal(t, 7.0, top)
	assert.Equal(t, 7.0, right)
	assert.Equal(t, 7.0, bottom)
	assert.Equal(t, 7.0, left)
}

func TestParseLengthPercentRelativeToContainer(t *testing.T) {
	assert.Equal(t, 50.0, parseLength("50%", 100, 0))
}

func TestParseLengthRemAndEmUseBaseSixteen(t *testing.T) {
	assert.Equal(t, 32.0, parseLength("2rem", 100, 0))
	assert.Equal(t, 24.0, parseLength("1.5em", 100, 0))
}
