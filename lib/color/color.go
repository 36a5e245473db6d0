package color

import (
	"fmt"
	imgcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Parse resolves a CSS color string (hex, rgb(), hsl(), named) into a pixel value.
func Parse(colorString string) (imgcolor.RGBA, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return imgcolor.RGBA{}, fmt.Errorf("invalid color %q: %w", colorString, err)
	}
	return premultiply(to255(c.R), to255(c.G), to255(c.B), to255(c.A)), nil
}

// MustParse is Parse for package level defaults.
func MustParse(colorString string) imgcolor.RGBA {
	c, err := Parse(colorString)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c imgcolor.RGBA) string {
	cf, _ := colorful.MakeColor(opaque(c))
	return cf.Hex()
}

// Opacity is the alpha channel of c in [0, 1].
func Opacity(c imgcolor.RGBA) float64 {
	return float64(c.A) / 255
}

// Lighten raises the HSL lightness of c by amount (0..1), keeping alpha.
func Lighten(c imgcolor.RGBA, amount float64) imgcolor.RGBA {
	cf, _ := colorful.MakeColor(opaque(c))
	h, s, l := cf.Hsl()
	r, g, b := colorful.Hsl(h, s, l+amount).Clamped().RGB255()
	return premultiply(r, g, b, c.A)
}

func IsZero(c imgcolor.RGBA) bool {
	return c == imgcolor.RGBA{}
}

// opaque undoes alpha premultiplication so colorful sees the straight color.
func opaque(c imgcolor.RGBA) imgcolor.RGBA {
	if c.A == 0 || c.A == 255 {
		return imgcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	return imgcolor.RGBA{
		R: uint8(uint32(c.R) * 255 / uint32(c.A)),
		G: uint8(uint32(c.G) * 255 / uint32(c.A)),
		B: uint8(uint32(c.B) * 255 / uint32(c.A)),
		A: 255,
	}
}

func to255(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func premultiply(r, g, b, a uint8) imgcolor.RGBA {
	return imgcolor.RGBA{
		R: uint8(uint32(r) * uint32(a) / 255),
		G: uint8(uint32(g) * uint32(a) / 255),
		B: uint8(uint32(b) * uint32(a) / 255),
		A: a,
	}
}
