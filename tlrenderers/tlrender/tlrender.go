// Package tlrender paints a computed timeline layout onto a Canvas.
//
// The renderer never holds surface state. It owns a bitmap cache keyed by
// icon handle and pixel size that is dropped whenever Init sees new sizes.
// A Painter is not safe for concurrent use.
package tlrender

import (
	"context"
	"image"
	imgcolor "image/color"
	"math"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/lib/log"
	"oss.terrastruct.com/timeline/tlconfig"
	"oss.terrastruct.com/timeline/tlstep"
	"oss.terrastruct.com/timeline/tltarget"
)

type Stroke struct {
	Color imgcolor.RGBA
	Width float64
}

type TextPaint struct {
	Color    imgcolor.RGBA
	Size     float64
	Typeface string
	Align    tltarget.TextAlign
}

// Canvas is the drawing surface. DrawImage takes the image's top-left
// corner. DrawText takes the anchor of the top of the line box; the anchor is
// interpreted according to TextPaint.Align.
type Canvas interface {
	StrokePath(cmds []geo.PathCmd, s Stroke) error
	DrawImage(img image.Image, x, y float64) error
	DrawText(text string, x, y float64, p TextPaint) error
}

// BitmapProvider resolves an icon handle to a size x size bitmap.
type BitmapProvider interface {
	Bitmap(handle tlstep.IconHandle, size int) (image.Image, error)
}

// TextLayouter breaks text into the lines it will be drawn as.
type TextLayouter interface {
	Lines(text string, style tlconfig.TextStyle, maxWidth float64) []string
	LineHeight(style tlconfig.TextStyle) float64
}

type Renderer interface {
	// Init prepares the renderer for icons of the given sizes.
	Init(sizes tlconfig.Sizes)
	Draw(ctx context.Context, c Canvas, layout *tltarget.Layout, paths tltarget.Paths, cfg tlconfig.Config) error
}

type cacheKey struct {
	handle tlstep.IconHandle
	size   int
}

type Painter struct {
	bitmaps BitmapProvider
	text    TextLayouter
	// rounded draws path corners with Style.CornerRadius.
	rounded bool

	sizes *tlconfig.Sizes
	cache map[cacheKey]image.Image
}

var _ Renderer = (*Painter)(nil)

// NewSnake returns a renderer that rounds path corners.
func NewSnake(bitmaps BitmapProvider, text TextLayouter) *Painter {
	return &Painter{bitmaps: bitmaps, text: text, rounded: true}
}

// NewLinear returns a renderer that draws square corners.
func NewLinear(bitmaps BitmapProvider, text TextLayouter) *Painter {
	return &Painter{bitmaps: bitmaps, text: text}
}

func (p *Painter) Init(sizes tlconfig.Sizes) {
	if p.sizes != nil && *p.sizes == sizes {
		return
	}
	p.sizes = &sizes
	p.cache = make(map[cacheKey]image.Image)
}

func (p *Painter) Draw(ctx context.Context, c Canvas, layout *tltarget.Layout, paths tltarget.Paths, cfg tlconfig.Config) (err error) {
	defer xdefer.Errorf(&err, "failed to draw timeline")

	if layout == nil {
		layout = tltarget.NewLayout(0)
	}
	p.Init(cfg.Sizes)
	log.Debug(ctx, "drawing timeline", slog.F("steps", len(layout.Steps)), slog.F("rounded", p.rounded))

	radius := 0.
	if p.rounded {
		radius = cfg.Style.CornerRadius
	}
	if err := p.strokePath(c, paths.Remaining, radius, Stroke{Color: cfg.Style.StrokeColor, Width: cfg.Style.StrokeWidth}); err != nil {
		return err
	}
	if err := p.strokePath(c, paths.Completed, radius, Stroke{Color: cfg.Style.ProgressColor, Width: cfg.Style.StrokeWidth}); err != nil {
		return err
	}

	for _, sl := range layout.Steps {
		if err := p.drawIcon(c, sl.Step.Icon(), cfg.Sizes.ImageLvl, sl.Icon()); err != nil {
			return err
		}
	}
	if layout.ProgressIcon != nil {
		if err := p.drawIcon(c, cfg.Style.ProgressIcon, cfg.Sizes.IconProgress, layout.ProgressIcon); err != nil {
			return err
		}
	}
	for _, sl := range layout.Steps {
		if err := p.drawText(c, sl, cfg); err != nil {
			return err
		}
	}
	return nil
}

func (p *Painter) strokePath(c Canvas, path geo.Path, radius float64, s Stroke) error {
	if path.IsEmpty() || s.Width == 0 {
		return nil
	}
	return c.StrokePath(path.Rounded(radius), s)
}

func (p *Painter) drawIcon(c Canvas, h tlstep.IconHandle, size float64, center *geo.Point) error {
	px := int(math.Round(size))
	if h == "" || px <= 0 {
		return nil
	}
	img, err := p.bitmap(h, px)
	if err != nil {
		return err
	}
	return c.DrawImage(img, center.X-float64(px)/2, center.Y-float64(px)/2)
}

func (p *Painter) bitmap(h tlstep.IconHandle, size int) (image.Image, error) {
	k := cacheKey{handle: h, size: size}
	if img, ok := p.cache[k]; ok {
		return img, nil
	}
	img, err := p.bitmaps.Bitmap(h, size)
	if err != nil {
		return nil, err
	}
	p.cache[k] = img
	return img, nil
}

func (p *Painter) drawText(c Canvas, sl tltarget.StepLayout, cfg tlconfig.Config) error {
	if title := sl.Step.Title(); title != "" {
		style := cfg.TitleTextStyle()
		paint := TextPaint{Color: cfg.Style.TitleColor, Size: style.Size, Typeface: style.Typeface, Align: sl.TextAlign}
		lines := p.text.Lines(title, style, sl.DescriptionMaxWidth)
		if len(lines) > 0 {
			if err := c.DrawText(lines[0], sl.TitleX, sl.TitleY, paint); err != nil {
				return err
			}
		}
	}

	desc := sl.Step.Description()
	if desc == "" {
		return nil
	}
	style := cfg.DescriptionTextStyle()
	paint := TextPaint{Color: cfg.Style.DescriptionColor, Size: style.Size, Typeface: style.Typeface, Align: sl.TextAlign}
	lh := p.text.LineHeight(style)
	for i, line := range p.text.Lines(desc, style, sl.DescriptionMaxWidth) {
		if err := c.DrawText(line, sl.DescriptionX, sl.DescriptionY+float64(i)*lh, paint); err != nil {
			return err
		}
	}
	return nil
}
