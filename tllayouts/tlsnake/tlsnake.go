// Package tlsnake lays a timeline out as a zig-zag.
//
// The path starts at the top of the container on the start anchor. Each step
// runs across the container, alternating toward the left edge on even steps
// and the right edge on odd steps, then drops down to the step's icon. The
// first step runs only from the anchor to the left stroke margin and drops
// StepYFirst. The last step drops half a pitch so the path ends mid cell.
package tlsnake

import (
	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/tlconfig"
	"oss.terrastruct.com/timeline/tllayouts"
	"oss.terrastruct.com/timeline/tlstep"
	"oss.terrastruct.com/timeline/tltarget"
)

type Engine struct{}

var _ tllayouts.Engine = (*Engine)(nil)

func New() *Engine {
	return &Engine{}
}

func (e *Engine) BuildPath(steps []tlstep.Step, cfg tlconfig.Config, width float64) tltarget.Paths {
	t, _ := trace(steps, cfg, width)
	return t.Paths()
}

func (e *Engine) BuildLayout(steps []tlstep.Step, cfg tlconfig.Config, width float64) *tltarget.Layout {
	t, icons := trace(steps, cfg, width)

	layout := tltarget.NewLayout(width)
	if p := t.Progress(); p != nil {
		layout.ProgressIcon = p.Add(0, cfg.Spacing.MarginTopProgressIcon)
	}

	ms := cfg.Spacing.MarginHorizontalStroke
	offset := cfg.Sizes.ImageLvl/2 + cfg.Spacing.MarginHorizontalImage
	for i, s := range steps {
		icon := icons[i]
		sl := tltarget.StepLayout{
			Index:  i,
			Step:   s,
			IconX:  icon.X,
			IconY:  icon.Y,
			TitleY: icon.Y + cfg.Spacing.MarginTopTitle,
		}
		if i%2 == 0 {
			sl.TextAlign = tltarget.AlignLeft
			sl.TitleX = icon.X + offset
			sl.DescriptionMaxWidth = geo.NonNegative(width - ms - sl.TitleX - cfg.Spacing.MarginHorizontalText)
		} else {
			sl.TextAlign = tltarget.AlignRight
			sl.TitleX = icon.X - offset
			sl.DescriptionMaxWidth = geo.NonNegative(sl.TitleX - ms - cfg.Spacing.MarginHorizontalText)
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
	t, _ := trace(steps, cfg, width)
	return width, t.Pen().Y
}

// trace walks every step and returns the tracer along with each step's icon
// center.
func trace(steps []tlstep.Step, cfg tlconfig.Config, width float64) (*tllayouts.Tracer, []*geo.Point) {
	ms := cfg.Spacing.MarginHorizontalStroke
	startX := tllayouts.AnchorX(cfg.StartPosition, width, ms)
	stepXFirst := geo.NonNegative(startX - ms)
	stepX := geo.NonNegative(width - 2*ms)

	t := tllayouts.NewTracer(steps, geo.NewPoint(startX, 0))
	icons := make([]*geo.Point, 0, len(steps))
	for i, s := range steps {
		dir := -1.
		if i%2 == 1 {
			dir = 1
		}
		run, drop := stepX, cfg.Spacing.StepY
		switch {
		case i == 0:
			run, drop = stepXFirst, cfg.Spacing.StepYFirst
		case i == len(steps)-1:
			drop = cfg.Spacing.StepY / 2
		}

		corner := t.Pen().Add(dir*run, 0)
		bottom := corner.Add(0, drop)
		t.Leg(i, s, corner, bottom)
		icons = append(icons, bottom)
	}
	return t, icons
}
