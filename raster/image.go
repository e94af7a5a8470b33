package raster

import (
	"bytes"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// NormalizeImage converts arbitrary raster image bytes to PNG for use in an
// image primitive. PNG input passes through untouched; JPEG, GIF, BMP, TIFF
// and WebP are decoded and re-encoded. The renderer applies the same
// conversion before registering image data, so callers only need this for
// ahead-of-time validation.
func NormalizeImage(data []byte) ([]byte, error) {
	out, err := normalizeImage(data)
	if err != nil {
		return nil, newRenderError("normalize", -1, err)
	}
	return out, nil
}

func normalizeImage(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, pngMagic) {
		return data, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
