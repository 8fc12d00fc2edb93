package qrgen

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// DefaultQuietZone and DefaultScale match the values used when no
// caller-supplied scale/border is given (4-module quiet zone, 5 pixels
// per module, nearest-neighbour - there is no antialiasing to get
// right in a strictly black-and-white grid).
const (
	DefaultQuietZone = 4
	DefaultScale     = 5
)

// WritePNG writes the symbol to w as a PNG, scale pixels per module and
// border modules of white quiet zone on every side. Passing scale < 1
// uses DefaultScale; border < 0 uses DefaultQuietZone.
func (q *QRCode) WritePNG(w io.Writer, scale, border int) error {
	if scale < 1 {
		scale = DefaultScale
	}
	if border < 0 {
		border = DefaultQuietZone
	}

	size := q.ModuleWidth()
	dim := (size + 2*border) * scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0 // index 0 is white
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !q.Modules[r][c] {
				continue
			}
			startX := (c + border) * scale
			startY := (r + border) * scale
			for y := 0; y < scale; y++ {
				for x := 0; x < scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1) // index 1 is black
				}
			}
		}
	}

	return png.Encode(w, img)
}
