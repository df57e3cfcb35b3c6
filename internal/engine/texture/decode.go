// Package texture decodes PNG, JPEG, BMP and TGA images into RGBA pixels
// ready for upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// Decode decodes PNG, JPEG, BMP or TGA data. TGA has no magic number,
// so it is selected by the file name's extension.
func Decode(data []byte, name string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// ToRGBA converts img to tightly packed RGBA starting at (0,0).
// flipY reverses row order, which 2D textures need because GL's t=0 is
// the bottom row while images store the top row first.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if flipY {
		stride := rgba.Stride
		row := make([]byte, stride)
		for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
			t := rgba.Pix[top*stride : (top+1)*stride]
			bt := rgba.Pix[bottom*stride : (bottom+1)*stride]
			copy(row, t)
			copy(t, bt)
			copy(bt, row)
		}
	}
	return rgba
}
