package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorHexLongForm(t *testing.T) {
	assert.Equal(t, [3]int{255, 0, 128}, parseColor("#ff0080"))
}

func TestParseColorHexShortForm(t *testing.T) {
	assert.Equal(t, [3]int{255, 255, 255}, parseColor("#fff"))
	assert.Equal(t, [3]int{0, 0, 0}, parseColor("#000"))
}

func TestParseColorRGBFunctionalForm(t *testing.T) {
	assert.Equal(t, [3]int{10, 20, 30}, parseColor("rgb(10,20,30)"))
	assert.Equal(t, [3]int{10, 20, 30}, parseColor("rgb(10, 20, 30)"))
}

func TestParseColorUnrecognizedFallsBackToBlack(t *testing.T) {
	assert.Equal(t, [3]int{0, 0, 0}, parseColor("not-a-color"))
}
