package transfer

import (
	"fmt"
	"image"
	"image/color"
)

// Pixmap is the native image representation: a W×H grid of 3-channel
// 8-bit RGB pixels stored interleaved (R, G, B, R, G, B, ...).
//
// This is the form images enter and leave the transfer pipeline in;
// all intermediate computation happens on float64 channel planes.
type Pixmap struct {
	Width  int
	Height int
	Pix    []uint8 // len == Width*Height*3
}

// NewPixmap allocates a zeroed Pixmap of the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// FromImage converts a decoded image into a Pixmap.
//
// Images without full color information are rejected: the transfer method
// operates on three independent channels, so grayscale and gray-palette
// inputs are a configuration error, not something to silently expand.
func FromImage(img image.Image) (*Pixmap, error) {
	if err := validateChannels(img); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image %dx%d", w, h)
	}

	pm := NewPixmap(w, h)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// Convert from 16-bit to 8-bit
			pm.Pix[i] = uint8(r >> 8)
			pm.Pix[i+1] = uint8(g >> 8)
			pm.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return pm, nil
}

// validateChannels rejects images whose color model carries fewer than
// three channels.
func validateChannels(img image.Image) error {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return fmt.Errorf("image has fewer than 3 channels (%T)", img)
	case *image.Paletted:
		for _, c := range m.Palette {
			r, g, b, _ := c.RGBA()
			if r != g || g != b {
				return nil
			}
		}
		return fmt.Errorf("image has fewer than 3 channels (gray palette)")
	}
	return nil
}

// ToImage converts the Pixmap back to a standard image for encoding
// and display.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	i := 0
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: p.Pix[i],
				G: p.Pix[i+1],
				B: p.Pix[i+2],
				A: 255,
			})
			i += 3
		}
	}
	return img
}

// pixels returns the number of pixels in the image.
func (p *Pixmap) pixels() int {
	return p.Width * p.Height
}

// planes holds one float64 slice per channel of a working-space image.
// The split layout mirrors how the transfer operates: statistics,
// matching, and blending all act on one channel at a time.
type planes struct {
	width  int
	height int
	ch     [3][]float64
}

func newPlanes(width, height int) *planes {
	n := width * height
	return &planes{
		width:  width,
		height: height,
		ch:     [3][]float64{make([]float64, n), make([]float64, n), make([]float64, n)},
	}
}

func (pl *planes) pixels() int {
	return pl.width * pl.height
}
