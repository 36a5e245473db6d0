// Package timeline renders progress timelines in one call. Hosts that need
// hit testing or incremental updates use tlview directly.
package timeline

import (
	"bytes"
	"context"
	"fmt"
	imgcolor "image/color"
	"math"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/timeline/lib/bitmap"
	"oss.terrastruct.com/timeline/lib/color"
	"oss.terrastruct.com/timeline/lib/textmeasure"
	"oss.terrastruct.com/timeline/tlconfig"
	"oss.terrastruct.com/timeline/tlplugin"
	"oss.terrastruct.com/timeline/tlrenderers/tlraster"
	"oss.terrastruct.com/timeline/tlrenderers/tlsvg"
	"oss.terrastruct.com/timeline/tlstep"
	"oss.terrastruct.com/timeline/tlthemes/tlthemescatalog"
	"oss.terrastruct.com/timeline/tlview"
)

type RenderOpts struct {
	// Strategy is a registered strategy key. Empty means snake.
	Strategy string
	Registry *tlplugin.Registry

	Ruler *textmeasure.Ruler
	// Bitmaps resolves step icons. Without one only registered images can
	// be drawn, so steps with icons fail.
	Bitmaps *bitmap.Provider
	// ThemeID restyles the config with a catalog theme.
	ThemeID *int64
	// Background overrides the theme background. Zero means none.
	Background imgcolor.RGBA
}

// theme applies opts.ThemeID to cfg and picks the background.
func (opts *RenderOpts) theme(cfg tlconfig.Config) (tlconfig.Config, imgcolor.RGBA, error) {
	if opts.ThemeID == nil {
		return cfg, opts.Background, nil
	}
	t, ok := tlthemescatalog.Find(*opts.ThemeID)
	if !ok {
		return cfg, imgcolor.RGBA{}, fmt.Errorf("theme %d not found", *opts.ThemeID)
	}
	cfg, err := t.Apply(cfg)
	if err != nil {
		return cfg, imgcolor.RGBA{}, err
	}
	if !color.IsZero(opts.Background) {
		return cfg, opts.Background, nil
	}
	bg, err := t.Background()
	return cfg, bg, err
}

func (opts *RenderOpts) view() (*tlview.View, *textmeasure.Ruler, error) {
	ruler := opts.Ruler
	if ruler == nil {
		var err error
		ruler, err = textmeasure.NewRuler()
		if err != nil {
			return nil, nil, err
		}
	}
	bitmaps := opts.Bitmaps
	if bitmaps == nil {
		bitmaps = bitmap.NewProvider(nil)
	}
	v := tlview.New(tlview.Opts{
		Bitmaps:  bitmaps,
		Text:     ruler,
		Registry: opts.Registry,
	})
	if opts.Strategy != "" {
		if err := v.SetStrategyKey(opts.Strategy); err != nil {
			return nil, nil, err
		}
	}
	return v, ruler, nil
}

type measured struct {
	view       *tlview.View
	ruler      *textmeasure.Ruler
	height     float64
	background imgcolor.RGBA
}

func measure(ctx context.Context, steps []tlstep.Step, cfg tlconfig.Config, width float64, opts *RenderOpts) (*measured, error) {
	if opts == nil {
		opts = &RenderOpts{}
	}
	cfg, bg, err := opts.theme(cfg)
	if err != nil {
		return nil, err
	}
	v, ruler, err := opts.view()
	if err != nil {
		return nil, err
	}
	v.SetConfig(cfg)
	v.ReplaceSteps(steps)
	h, err := v.Measure(ctx, width)
	if err != nil {
		return nil, err
	}
	return &measured{view: v, ruler: ruler, height: h, background: bg}, nil
}

// RenderSVG lays steps out across width and returns an SVG document sized
// to fit them.
func RenderSVG(ctx context.Context, steps []tlstep.Step, cfg tlconfig.Config, width float64, opts *RenderOpts) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to render svg")

	m, err := measure(ctx, steps, cfg, width, opts)
	if err != nil {
		return nil, err
	}
	c := tlsvg.New(m.ruler)
	if err := m.view.Draw(ctx, c); err != nil {
		return nil, err
	}
	return c.Bytes(width, m.height, m.background), nil
}

// RenderPNG is RenderSVG for raster output. The image is at least 1x1.
func RenderPNG(ctx context.Context, steps []tlstep.Step, cfg tlconfig.Config, width float64, opts *RenderOpts) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to render png")

	m, err := measure(ctx, steps, cfg, width, opts)
	if err != nil {
		return nil, err
	}
	c, err := tlraster.New(pixels(width), pixels(m.height), m.background)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if err := m.view.Draw(ctx, c); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pixels(v float64) int {
	return int(math.Max(1, math.Ceil(v)))
}
