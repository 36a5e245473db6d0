// Package tltarget holds what the layout engines compute and the renderers
// consume. Values are rebuilt on every measure pass and never modified after.
package tltarget

import (
	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/tlstep"
)

// Paths splits the timeline trace at the progress point.
type Paths struct {
	Completed geo.Path `json:"completed"`
	Remaining geo.Path `json:"remaining"`
}

// AxisLengths sums the per-axis extents of both paths.
func (p Paths) AxisLengths() (dx, dy float64) {
	cdx, cdy := p.Completed.AxisLengths()
	rdx, rdy := p.Remaining.AxisLengths()
	return cdx + rdx, cdy + rdy
}

type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// StepLayout is where one step's icon and text go. Icon coordinates are the
// icon center. Text coordinates are the anchor of the text's top edge; the
// anchor is the left edge, center or right edge depending on TextAlign.
type StepLayout struct {
	Index int         `json:"index"`
	Step  tlstep.Step `json:"-"`

	TitleX       float64 `json:"titleX"`
	TitleY       float64 `json:"titleY"`
	DescriptionX float64 `json:"descriptionX"`
	DescriptionY float64 `json:"descriptionY"`
	IconX        float64 `json:"iconX"`
	IconY        float64 `json:"iconY"`

	TextAlign           TextAlign `json:"textAlign"`
	DescriptionMaxWidth float64   `json:"descriptionMaxWidth"`
}

func (s StepLayout) Icon() *geo.Point {
	return geo.NewPoint(s.IconX, s.IconY)
}

type Layout struct {
	Width float64      `json:"width"`
	Steps []StepLayout `json:"steps"`
	// ProgressIcon is nil when no step is in progress.
	ProgressIcon *geo.Point `json:"progressIcon,omitempty"`
}

func NewLayout(width float64) *Layout {
	return &Layout{Width: width}
}

func (l *Layout) Empty() bool {
	return l == nil || len(l.Steps) == 0
}
