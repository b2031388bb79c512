package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFontWeightNamedBuckets(t *testing.T) {
	assert.Equal(t, WeightThin, ParseFontWeight("thin"))
	assert.Equal(t, WeightBold, ParseFontWeight("bold"))
	assert.Equal(t, WeightRegular, ParseFontWeight("normal"))
	assert.Equal(t, WeightRegular, ParseFontWeight(""))
}

func TestParseFontWeightNumeric(t *testing.T) {
	w := ParseFontWeight("650")
	assert.Equal(t, uint16(650), w.Numeric())
	assert.True(t, w.IsBold())
}

func TestParseFontWeightInvalidFallsBackToRegular(t *testing.T) {
	assert.Equal(t, WeightRegular, ParseFontWeight("not-a-weight"))
}

func TestFontWeightIsBoldThreshold(t *testing.T) {
	assert.False(t, NumericWeight(500).IsBold())
	assert.True(t, NumericWeight(600).IsBold())
	assert.True(t, WeightBold.IsBold())
	assert.False(t, WeightRegular.IsBold())
}

func TestParseFontStyle(t *testing.T) {
	assert.Equal(t, FontStyleItalic, ParseFontStyle("italic"))
	assert.Equal(t, FontStyleOblique, ParseFontStyle("oblique"))
	assert.Equal(t, FontStyleNormal, ParseFontStyle("normal"))
	assert.Equal(t, FontStyleNormal, ParseFontStyle("garbage"))
}
