// Package tlsvg is a tlrender.Canvas that writes SVG elements.
package tlsvg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	imgcolor "image/color"
	"image/png"

	"oss.terrastruct.com/timeline/lib/color"
	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/lib/svg"
	"oss.terrastruct.com/timeline/lib/textmeasure"
	"oss.terrastruct.com/timeline/tlconfig"
	"oss.terrastruct.com/timeline/tlrenderers/tlrender"
	"oss.terrastruct.com/timeline/tltarget"
)

// ascent of the Go fonts as a fraction of the font size, used without a ruler
const DEFAULT_ASCENT_RATIO = .9

type Canvas struct {
	ruler *textmeasure.Ruler
	buf   *bytes.Buffer
}

var _ tlrender.Canvas = (*Canvas)(nil)

// New returns an empty canvas. The ruler places text baselines and may be
// nil.
func New(ruler *textmeasure.Ruler) *Canvas {
	return &Canvas{
		ruler: ruler,
		buf:   new(bytes.Buffer),
	}
}

func (c *Canvas) StrokePath(cmds []geo.PathCmd, s tlrender.Stroke) error {
	if len(cmds) == 0 {
		return nil
	}
	fmt.Fprintf(c.buf, `<path d="%s" fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round" />`,
		svg.PathData(cmds), color.Hex(s.Color), svg.Num(color.Opacity(s.Color)), svg.Num(s.Width),
	)
	return nil
}

func (c *Canvas) DrawImage(img image.Image, x, y float64) error {
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return err
	}
	bounds := img.Bounds()
	fmt.Fprintf(c.buf, `<image href="data:image/png;base64,%s" x="%s" y="%s" width="%d" height="%d" />`,
		base64.StdEncoding.EncodeToString(b.Bytes()), svg.Num(x), svg.Num(y), bounds.Dx(), bounds.Dy(),
	)
	return nil
}

func (c *Canvas) DrawText(s string, x, y float64, p tlrender.TextPaint) error {
	if s == "" || p.Size <= 0 {
		return nil
	}
	anchor := "start"
	switch p.Align {
	case tltarget.AlignCenter:
		anchor = "middle"
	case tltarget.AlignRight:
		anchor = "end"
	}
	fmt.Fprintf(c.buf, `<text x="%s" y="%s" fill="%s" fill-opacity="%s" font-size="%s" font-family="%s" text-anchor="%s">%s</text>`,
		svg.Num(x), svg.Num(y+c.ascent(p)), color.Hex(p.Color), svg.Num(color.Opacity(p.Color)),
		svg.Num(p.Size), fontFamily(p.Typeface), anchor, svg.EscapeText(s),
	)
	return nil
}

func (c *Canvas) ascent(p tlrender.TextPaint) float64 {
	if c.ruler == nil {
		return p.Size * DEFAULT_ASCENT_RATIO
	}
	return c.ruler.Ascent(tlconfig.TextStyle{Size: p.Size, Typeface: p.Typeface})
}

func fontFamily(typeface string) string {
	switch typeface {
	case textmeasure.TYPEFACE_MONO:
		return "Go Mono, monospace"
	case textmeasure.TYPEFACE_BOLD:
		return "Go Bold, sans-serif"
	default:
		return "Go, sans-serif"
	}
}

// Bytes wraps everything drawn so far in an SVG document. A non-zero
// background is painted behind it.
func (c *Canvas) Bytes(width, height float64, background imgcolor.RGBA) []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<?xml version="1.0" encoding="utf-8"?><svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%s" height="%s" viewBox="0 0 %s %s">`,
		svg.Num(width), svg.Num(height), svg.Num(width), svg.Num(height),
	)
	if !color.IsZero(background) {
		fmt.Fprintf(&out, `<rect x="0" y="0" width="%s" height="%s" fill="%s" />`, svg.Num(width), svg.Num(height), color.Hex(background))
	}
	out.Write(c.buf.Bytes())
	out.WriteString("</svg>")
	return out.Bytes()
}
