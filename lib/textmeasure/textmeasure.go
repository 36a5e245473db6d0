// Package textmeasure measures and breaks text with TrueType fonts.
//
// A Ruler holds parsed fonts by typeface name and caches one face per
// typeface and size. It is not safe for concurrent use.
package textmeasure

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"oss.terrastruct.com/timeline/tlconfig"
)

const (
	TYPEFACE_REGULAR = "regular"
	TYPEFACE_BOLD    = "bold"
	TYPEFACE_MONO    = "mono"

	ELLIPSIS = "…"
)

type faceKey struct {
	typeface string
	size     float64
}

type Ruler struct {
	// LineHeightFactor scales the font's line height.
	LineHeightFactor float64

	ttfs  map[string]*truetype.Font
	faces map[faceKey]font.Face
}

// NewRuler returns a ruler with the Go fonts registered as regular, bold and
// mono.
func NewRuler() (*Ruler, error) {
	r := &Ruler{
		LineHeightFactor: 1.,
		ttfs:             make(map[string]*truetype.Font),
		faces:            make(map[faceKey]font.Face),
	}
	for name, ttf := range map[string][]byte{
		TYPEFACE_REGULAR: goregular.TTF,
		TYPEFACE_BOLD:    gobold.TTF,
		TYPEFACE_MONO:    gomono.TTF,
	} {
		if err := r.RegisterTypeface(name, ttf); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RegisterTypeface parses ttf and makes it available under name, replacing
// any typeface already registered there.
func (r *Ruler) RegisterTypeface(name string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse typeface %q: %w", name, err)
	}
	r.ttfs[name] = f
	for k := range r.faces {
		if k.typeface == name {
			delete(r.faces, k)
		}
	}
	return nil
}

func (r *Ruler) HasTypeface(name string) bool {
	_, ok := r.ttfs[name]
	return ok
}

// face returns the cached face for style. Unknown typefaces fall back to
// regular.
func (r *Ruler) face(style tlconfig.TextStyle) font.Face {
	name := style.Typeface
	if _, ok := r.ttfs[name]; !ok {
		name = TYPEFACE_REGULAR
	}
	k := faceKey{typeface: name, size: style.Size}
	if f, ok := r.faces[k]; ok {
		return f
	}
	f := truetype.NewFace(r.ttfs[name], &truetype.Options{
		Size:    style.Size,
		Hinting: font.HintingNone,
	})
	r.faces[k] = f
	return f
}

// MeasureWidth is the advance width of s on a single line.
func (r *Ruler) MeasureWidth(s string, style tlconfig.TextStyle) float64 {
	if s == "" || style.Size <= 0 {
		return 0
	}
	return float64(font.MeasureString(r.face(style), s)) / 64
}

func (r *Ruler) LineHeight(style tlconfig.TextStyle) float64 {
	if style.Size <= 0 {
		return 0
	}
	return math.Ceil(float64(r.face(style).Metrics().Height)/64) * r.LineHeightFactor
}

// Ascent is the distance from the top of a line box to its baseline.
func (r *Ruler) Ascent(style tlconfig.TextStyle) float64 {
	if style.Size <= 0 {
		return 0
	}
	return float64(r.face(style).Metrics().Ascent) / 64
}

// MeasureHeight is the height of text once broken into lines.
func (r *Ruler) MeasureHeight(text string, style tlconfig.TextStyle, maxWidth float64) float64 {
	return float64(len(r.Lines(text, style, maxWidth))) * r.LineHeight(style)
}
