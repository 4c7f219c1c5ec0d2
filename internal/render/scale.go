package render

import (
	"bytes"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"fieldgen-server/internal/shared/errors"
)

// Scale resizes an encoded PNG to the given percentage of its original
// size using Catmull-Rom resampling. 100 returns the input unchanged.
func Scale(data []byte, percent int) ([]byte, error) {
	if percent <= 0 || percent > 100 {
		return nil, errors.Validationf("scale must be between 1 and 100 percent, got %d", percent)
	}
	if percent == 100 {
		return data, nil
	}

	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapRender("failed to decode image for scaling", err)
	}

	bounds := src.Bounds()
	w := bounds.Dx() * percent / 100
	h := bounds.Dy() * percent / 100
	if w < 1 || h < 1 {
		return nil, errors.Validationf("scaling to %d percent leaves no pixels", percent)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, errors.WrapRender("failed to encode scaled image", err)
	}
	return buf.Bytes(), nil
}
