// Package tlraster is a tlrender.Canvas that paints into an RGBA image with
// gogpu/gg.
package tlraster

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"oss.terrastruct.com/timeline/lib/color"
	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/lib/textmeasure"
	"oss.terrastruct.com/timeline/tlrenderers/tlrender"
	"oss.terrastruct.com/timeline/tltarget"
)

type faceKey struct {
	typeface string
	size     float64
}

type Canvas struct {
	dc *gg.Context

	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}

var _ tlrender.Canvas = (*Canvas)(nil)

// New returns a width x height canvas filled with background. A zero
// background leaves the canvas transparent.
func New(width, height int, background imgcolor.RGBA) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	c := &Canvas{
		dc:      gg.NewContext(width, height),
		sources: make(map[string]*text.FontSource),
		faces:   make(map[faceKey]text.Face),
	}
	for name, ttf := range map[string][]byte{
		textmeasure.TYPEFACE_REGULAR: goregular.TTF,
		textmeasure.TYPEFACE_BOLD:    gobold.TTF,
		textmeasure.TYPEFACE_MONO:    gomono.TTF,
	} {
		src, err := text.NewFontSource(ttf)
		if err != nil {
			return nil, fmt.Errorf("failed to load typeface %q: %w", name, err)
		}
		c.sources[name] = src
	}

	if !color.IsZero(background) {
		c.dc.SetColor(background)
		c.dc.DrawRectangle(0, 0, float64(width), float64(height))
		if err := c.dc.Fill(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Canvas) StrokePath(cmds []geo.PathCmd, s tlrender.Stroke) error {
	if len(cmds) == 0 {
		return nil
	}
	c.dc.ClearPath()
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Width)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	for _, cmd := range cmds {
		switch cmd.Op {
		case geo.MoveTo:
			c.dc.MoveTo(cmd.To.X, cmd.To.Y)
		case geo.LineTo:
			c.dc.LineTo(cmd.To.X, cmd.To.Y)
		case geo.QuadTo:
			c.dc.QuadraticTo(cmd.Ctrl.X, cmd.Ctrl.Y, cmd.To.X, cmd.To.Y)
		}
	}
	return c.dc.Stroke()
}

func (c *Canvas) DrawImage(img image.Image, x, y float64) error {
	buf := gg.ImageBufFromImage(img)
	if buf == nil {
		return fmt.Errorf("failed to convert %T for drawing", img)
	}
	c.dc.DrawImage(buf, x, y)
	return nil
}

func (c *Canvas) DrawText(s string, x, y float64, p tlrender.TextPaint) error {
	if s == "" || p.Size <= 0 {
		return nil
	}
	face := c.face(p.Typeface, p.Size)
	w, _ := text.Measure(s, face)
	switch p.Align {
	case tltarget.AlignCenter:
		x -= w / 2
	case tltarget.AlignRight:
		x -= w
	}
	c.dc.SetColor(p.Color)
	c.dc.SetFont(face)
	c.dc.DrawString(s, x, y+face.Metrics().Ascent)
	return nil
}

func (c *Canvas) face(typeface string, size float64) text.Face {
	if _, ok := c.sources[typeface]; !ok {
		typeface = textmeasure.TYPEFACE_REGULAR
	}
	k := faceKey{typeface: typeface, size: size}
	if f, ok := c.faces[k]; ok {
		return f
	}
	f := c.sources[typeface].Face(size)
	c.faces[k] = f
	return f
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) Close() error {
	return c.dc.Close()
}
