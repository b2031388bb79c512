package pdf

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/sigmundgranaas/petty/internal/perr"
)

// loadAndRegisterImage fetches src through Resources and registers it
// with fpdf under a stable name. Raster formats decode through
// decoders.go's blank-imported image.Decode set; SVG resources are
// rasterized first (svg.go), since fpdf has no native vector-image
// support.
func (r *FPDFRenderer) loadAndRegisterImage(src string) (imageInfo, error) {
	if r.Resources == nil {
		return imageInfo{}, perr.New(perr.Resource, "no resource provider configured")
	}
	resrc, err := r.Resources.Load(src)
	if err != nil {
		return imageInfo{}, perr.Wrap(perr.Resource, "load image "+src, err)
	}

	name := src
	data := resrc.Data
	ext := strings.ToLower(filepath.Ext(src))

	if ext == ".svg" || looksLikeSVG(data) {
		rasterized, rerr := rasterizeSVG(data)
		if rerr != nil {
			return imageInfo{}, perr.Wrap(perr.Renderer, "rasterize SVG "+src, rerr)
		}
		data = rasterized
		ext = ".png"
	}

	imgType := imageTypeForExt(ext)
	if imgType != "JPG" && imgType != "PNG" && imgType != "GIF" {
		// Other formats go through image.Decode and reach fpdf as PNG.
		img, _, derr := image.Decode(bytes.NewReader(data))
		if derr != nil {
			return imageInfo{}, perr.Wrap(perr.Renderer, "decode image "+src, derr)
		}
		var buf bytes.Buffer
		if eerr := png.Encode(&buf, img); eerr != nil {
			return imageInfo{}, perr.Wrap(perr.Renderer, "re-encode image "+src, eerr)
		}
		data = buf.Bytes()
		imgType = "PNG"
	}
	reader := bytes.NewReader(data)
	if r.pdf.GetImageInfo(name) == nil {
		_ = r.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imgType, ReadDpi: true}, reader)
		if err := r.pdf.Error(); err != nil {
			return imageInfo{}, perr.Wrap(perr.Renderer, "register image "+src, err)
		}
	}
	return imageInfo{name: name}, nil
}

func looksLikeSVG(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return bytes.HasPrefix(trimmed, []byte("<?xml")) || bytes.HasPrefix(trimmed, []byte("<svg"))
}

func imageTypeForExt(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".png":
		return "PNG"
	case ".gif":
		return "GIF"
	case ".bmp":
		return "BMP"
	case ".tif", ".tiff":
		return "TIFF"
	case ".webp":
		return "WEBP"
	default:
		// An unknown extension leaves the format to image.Decode in
		// loadAndRegisterImage, which sniffs it among the decoders that
		// decoders.go's blank imports register.
		return ""
	}
}
