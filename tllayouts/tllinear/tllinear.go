// Package tllinear lays a timeline out on a straight line.
package tllinear

import (
	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/tlconfig"
	"oss.terrastruct.com/timeline/tllayouts"
	"oss.terrastruct.com/timeline/tlstep"
	"oss.terrastruct.com/timeline/tltarget"
)

type Engine struct {
	// orientation overrides Config.Orientation when set.
	orientation *tlconfig.Orientation
}

var _ tllayouts.Engine = (*Engine)(nil)

// New returns an engine that follows Config.Orientation.
func New() *Engine {
	return &Engine{}
}

func NewVertical() *Engine {
	o := tlconfig.Vertical
	return &Engine{orientation: &o}
}

func NewHorizontal() *Engine {
	o := tlconfig.Horizontal
	return &Engine{orientation: &o}
}

func (e *Engine) Orientation(cfg tlconfig.Config) tlconfig.Orientation {
	if e.orientation != nil {
		return *e.orientation
	}
	return cfg.Orientation
}

func (e *Engine) BuildPath(steps []tlstep.Step, cfg tlconfig.Config, width float64) tltarget.Paths {
	t, _ := e.trace(steps, cfg, width)
	return t.Paths()
}

func (e *Engine) BuildLayout(steps []tlstep.Step, cfg tlconfig.Config, width float64) *tltarget.Layout {
	t, icons := e.trace(steps, cfg, width)

	layout := tltarget.NewLayout(width)
	if p := t.Progress(); p != nil {
		layout.ProgressIcon = p.Add(0, cfg.Spacing.MarginTopProgressIcon)
	}

	horizontal := e.Orientation(cfg) == tlconfig.Horizontal
	offset := cfg.Sizes.ImageLvl/2 + cfg.Spacing.MarginHorizontalImage
	for i, s := range steps {
		icon := icons[i]
		sl := tltarget.StepLayout{
			Index: i,
			Step:  s,
			IconX: icon.X,
			IconY: icon.Y,
		}
		switch {
		case horizontal:
			sl.TextAlign = tltarget.AlignCenter
			sl.TitleX = icon.X
			sl.TitleY = icon.Y + cfg.Sizes.ImageLvl/2 + cfg.Spacing.MarginTopTitle
			sl.DescriptionMaxWidth = geo.NonNegative(cfg.Spacing.StepY - 2*cfg.Spacing.MarginHorizontalText)
		case cfg.StartPosition == tlconfig.StartPositionEnd:
			sl.TextAlign = tltarget.AlignRight
			sl.TitleX = icon.X - offset
			sl.TitleY = icon.Y - cfg.Sizes.ImageLvl/2 + cfg.Spacing.MarginTopTitle
			sl.DescriptionMaxWidth = geo.NonNegative(sl.TitleX - cfg.Spacing.MarginHorizontalText)
		default:
			sl.TextAlign = tltarget.AlignLeft
			sl.TitleX = icon.X + offset
			sl.TitleY = icon.Y - cfg.Sizes.ImageLvl/2 + cfg.Spacing.MarginTopTitle
			sl.DescriptionMaxWidth = geo.NonNegative(width - sl.TitleX - cfg.Spacing.MarginHorizontalText)
		}
		sl.DescriptionX = sl.TitleX
		sl.DescriptionY = sl.TitleY + cfg.Style.TitleTextSize + cfg.Spacing.MarginTopDescription
		layout.Steps = append(layout.Steps, sl)
	}
	return layout
}

func (e *Engine) Extent(steps []tlstep.Step, cfg tlconfig.Config, width float64) (w, h float64) {
	if len(steps) == 0 {
		return 0, 0
	}
	total := length(len(steps), cfg.Spacing)
	if e.Orientation(cfg) == tlconfig.Horizontal {
		return total, lineY(cfg)
	}
	return width, total
}

// length is the distance from the path's start to the last icon.
func length(n int, s tlconfig.Spacing) float64 {
	if n == 0 {
		return 0
	}
	return s.StepYFirst + s.StepY*float64(n-1)
}

// lineY is where a horizontal line runs, so the largest icon touches the top
// of the container.
func lineY(cfg tlconfig.Config) float64 {
	return cfg.Sizes.MaxIcon() / 2
}

func (e *Engine) origin(n int, cfg tlconfig.Config, width float64) *geo.Point {
	if e.Orientation(cfg) == tlconfig.Vertical {
		return geo.NewPoint(tllayouts.AnchorX(cfg.StartPosition, width, cfg.Spacing.MarginHorizontalStroke), 0)
	}
	total := length(n, cfg.Spacing)
	x := 0.
	switch cfg.StartPosition {
	case tlconfig.StartPositionCenter:
		x = (width - total) / 2
	case tlconfig.StartPositionEnd:
		x = width - total
	}
	return geo.NewPoint(x, lineY(cfg))
}

func (e *Engine) trace(steps []tlstep.Step, cfg tlconfig.Config, width float64) (*tllayouts.Tracer, []*geo.Point) {
	dx, dy := 0., 1.
	if e.Orientation(cfg) == tlconfig.Horizontal {
		dx, dy = 1, 0
	}

	t := tllayouts.NewTracer(steps, e.origin(len(steps), cfg, width))
	icons := make([]*geo.Point, 0, len(steps))
	for i, s := range steps {
		l := cfg.Spacing.StepY
		if i == 0 {
			l = cfg.Spacing.StepYFirst
		}
		end := t.Pen().Add(dx*l, dy*l)
		t.Leg(i, s, end)
		icons = append(icons, end)
	}
	return t, icons
}
