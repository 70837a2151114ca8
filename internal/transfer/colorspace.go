package transfer

import (
	"fmt"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/parallel"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Space identifies the working color space the transfer runs in.
type Space int

const (
	// Lab is CIE L*a*b* (D65), the default space. Channel statistics in
	// Lab are close to decorrelated, which is what makes the Reinhard
	// method work well here.
	Lab Space = iota
	// RGB runs the transfer directly on the native channels.
	RGB
	// HSV separates hue from saturation and brightness.
	HSV
	// XYZ is CIE 1931 tristimulus space.
	XYZ
)

// spaceDef is one row of the colorspace table: the forward and backward
// per-pixel mappings between native 8-bit RGB and the 0-255 working
// domain, plus the display names for the three channels.
type spaceDef struct {
	name     string
	channels [3]string
	forward  func(r, g, b uint8) (c0, c1, c2 float64)
	backward func(c0, c1, c2 float64) (r, g, b uint8)
}

// All working values are kept in a non-negative 0-255 domain, using the
// same scaling OpenCV applies to 8-bit Lab/HSV/XYZ images. The log
// transform downstream requires positive inputs, so the native float
// ranges (negative a/b, fractional s/v) are not usable directly.
var spaceTable = map[Space]spaceDef{
	Lab: {
		name:     "lab",
		channels: [3]string{"Luminance", "Alpha", "Beta"},
		forward: func(r, g, b uint8) (float64, float64, float64) {
			l, a, bb := nativeColor(r, g, b).Lab()
			return l * 255, a*100 + 128, bb*100 + 128
		},
		backward: func(c0, c1, c2 float64) (uint8, uint8, uint8) {
			return clampedRGB(colorful.Lab(c0/255, (c1-128)/100, (c2-128)/100))
		},
	},
	RGB: {
		name:     "rgb",
		channels: [3]string{"Red", "Green", "Blue"},
		forward: func(r, g, b uint8) (float64, float64, float64) {
			return float64(r), float64(g), float64(b)
		},
		backward: func(c0, c1, c2 float64) (uint8, uint8, uint8) {
			return quantize(c0), quantize(c1), quantize(c2)
		},
	},
	HSV: {
		name:     "hsv",
		channels: [3]string{"Hue", "Saturation", "Value"},
		forward: func(r, g, b uint8) (float64, float64, float64) {
			h, s, v := nativeColor(r, g, b).Hsv()
			return h / 2, s * 255, v * 255
		},
		backward: func(c0, c1, c2 float64) (uint8, uint8, uint8) {
			return clampedRGB(colorful.Hsv(math.Mod(c0*2, 360), c1/255, c2/255))
		},
	},
	XYZ: {
		name:     "xyz",
		channels: [3]string{"X", "Y", "Z"},
		forward: func(r, g, b uint8) (float64, float64, float64) {
			x, y, z := nativeColor(r, g, b).Xyz()
			return x * 255, y * 255, z * 255
		},
		backward: func(c0, c1, c2 float64) (uint8, uint8, uint8) {
			return clampedRGB(colorful.Xyz(c0/255, c1/255, c2/255))
		},
	},
}

// ParseSpace maps a user-facing space name to its Space value.
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(s) {
	case "lab":
		return Lab, nil
	case "rgb":
		return RGB, nil
	case "hsv":
		return HSV, nil
	case "xyz":
		return XYZ, nil
	}
	return 0, fmt.Errorf("unknown color space %q (want lab, rgb, hsv, or xyz)", s)
}

// String returns the lower-case space name.
func (s Space) String() string {
	if def, ok := spaceTable[s]; ok {
		return def.name
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// ChannelNames returns the three display labels for the space.
func (s Space) ChannelNames() [3]string {
	return spaceTable[s].channels
}

// valid reports whether s is one of the four supported spaces.
func (s Space) valid() bool {
	_, ok := spaceTable[s]
	return ok
}

// forward converts a native Pixmap into working-space channel planes.
func (s Space) forward(pm *Pixmap) *planes {
	def := spaceTable[s]
	pl := newPlanes(pm.Width, pm.Height)
	parallel.Line(pm.Height, func(start, end int) {
		for i := start * pm.Width; i < end*pm.Width; i++ {
			c0, c1, c2 := def.forward(pm.Pix[i*3], pm.Pix[i*3+1], pm.Pix[i*3+2])
			pl.ch[0][i] = c0
			pl.ch[1][i] = c1
			pl.ch[2][i] = c2
		}
	})
	return pl
}

// backward converts working-space planes back into a native Pixmap.
// Working values are quantized to the integral 0-255 range first, the
// same truncation the 8-bit working representation imposes.
func (s Space) backward(pl *planes) *Pixmap {
	def := spaceTable[s]
	pm := NewPixmap(pl.width, pl.height)
	parallel.Line(pl.height, func(start, end int) {
		for i := start * pl.width; i < end*pl.width; i++ {
			c0 := float64(quantize(pl.ch[0][i]))
			c1 := float64(quantize(pl.ch[1][i]))
			c2 := float64(quantize(pl.ch[2][i]))
			r, g, b := def.backward(c0, c1, c2)
			pm.Pix[i*3] = r
			pm.Pix[i*3+1] = g
			pm.Pix[i*3+2] = b
		}
	})
	return pm
}

// nativeColor lifts 8-bit RGB into go-colorful's 0-1 color type.
func nativeColor(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// clampedRGB projects a possibly out-of-gamut color back into sRGB and
// returns 8-bit components.
func clampedRGB(c colorful.Color) (uint8, uint8, uint8) {
	return c.Clamped().RGB255()
}

// quantize rounds a working value to the representable integral range,
// clamping out-of-range values rather than wrapping them.
func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
