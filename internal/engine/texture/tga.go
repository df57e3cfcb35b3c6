package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeUncompressed = 2
	TGATypeRLE          = 10
)

// ErrTGATruncated is returned when pixel data ends early.
var ErrTGATruncated = errors.New("tga: data truncated")

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-colour TGA
// images at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, ErrTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: colour-mapped images not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, ErrTGATruncated
	}

	d := tgaDecoder{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		src:    data[offset:],
		bpp:    bpp / 8,
		width:  width,
		height: height,
		flip:   !topToBottom,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = d.raw(width * height)
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img           *image.RGBA
	src           []byte
	pos           int // read offset into src
	pixel         int // next destination pixel, in file order
	bpp           int
	width, height int
	flip          bool // rows stored bottom-up
}

// next reads one BGR(A) pixel.
func (d *tgaDecoder) next() (color.RGBA, error) {
	if d.pos+d.bpp > len(d.src) {
		return color.RGBA{}, ErrTGATruncated
	}
	p := d.src[d.pos : d.pos+d.bpp]
	d.pos += d.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bpp == 4 {
		c.A = p[3]
	}
	return c, nil
}

// put writes c at the next destination pixel.
func (d *tgaDecoder) put(c color.RGBA) {
	x, y := d.pixel%d.width, d.pixel/d.width
	if d.flip {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.pixel++
}

func (d *tgaDecoder) raw(n int) error {
	for i := 0; i < n; i++ {
		c, err := d.next()
		if err != nil {
			return err
		}
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	total := d.width * d.height
	for d.pixel < total {
		if d.pos >= len(d.src) {
			return ErrTGATruncated
		}
		header := d.src[d.pos]
		d.pos++
		count := min(int(header&0x7F)+1, total-d.pixel)

		if header&0x80 == 0 {
			if err := d.raw(count); err != nil {
				return err
			}
			continue
		}

		c, err := d.next()
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			d.put(c)
		}
	}
	return nil
}
