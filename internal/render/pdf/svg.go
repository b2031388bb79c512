package pdf

import (
	"bytes"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// svgRasterDPI is the resolution SVG resources render at before
// embedding as a raster image. fpdf has no vector-image support, so
// this is the simplest faithful bridge (the teacher's
// examples/images_and_styles sample already exercises SVG content;
// the kernel renderer now handles it directly rather than via example
// glue code).
const svgRasterDPI = 96

// rasterizeSVG decodes an SVG document and rasterizes it to PNG bytes
// at its intrinsic size scaled for svgRasterDPI.
func rasterizeSVG(data []byte) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 {
		w = 300
	}
	if h <= 0 {
		h = 300
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw := rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds()))
	icon.Draw(draw, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
