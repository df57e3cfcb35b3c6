package gpu

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/texture"
)

// LoadTexture2D reads an image file and uploads it as a mipmapped 2D texture.
func LoadTexture2D(path string) (uint32, error) {
	img, err := loadRGBA(path, true)
	if err != nil {
		return 0, err
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

// SolidTexture uploads a 1x1 texture of a single colour. It stands in for
// textures that fail to load.
func SolidTexture(c color.RGBA) uint32 {
	pix := []uint8{c.R, c.G, c.B, c.A}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// LoadCubemap uploads six faces in +X, -X, +Y, -Y, +Z, -Z order
// (right, left, top, bottom, front, back).
func LoadCubemap(faces []string) (uint32, error) {
	if len(faces) != 6 {
		return 0, fmt.Errorf("cubemap needs 6 faces, got %d", len(faces))
	}

	imgs := make([]*image.RGBA, len(faces))
	for i, path := range faces {
		img, err := loadRGBA(path, false)
		if err != nil {
			return 0, err
		}
		imgs[i] = img
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i, img := range imgs {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return id, nil
}

// DeleteTextures releases texture ids. Zero ids are ignored.
func DeleteTextures(ids ...uint32) {
	for _, id := range ids {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

func loadRGBA(path string, flipY bool) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}
	img, err := texture.Decode(data, path)
	if err != nil {
		return nil, err
	}
	rgba := texture.ToRGBA(img, flipY)
	if len(rgba.Pix) == 0 {
		return nil, fmt.Errorf("texture %s is empty", path)
	}
	return rgba, nil
}
