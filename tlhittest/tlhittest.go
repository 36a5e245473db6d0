// Package tlhittest maps a touch point to the step or progress icon under it.
package tlhittest

import (
	"math"

	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/tltarget"
)

type Kind int

const (
	HitNone Kind = iota
	HitStep
	HitProgressIcon
)

func (k Kind) String() string {
	switch k {
	case HitStep:
		return "step"
	case HitProgressIcon:
		return "progress_icon"
	default:
		return "none"
	}
}

type Hit struct {
	Kind Kind
	// Index is the step index for HitStep and -1 otherwise.
	Index int
}

var None = Hit{Kind: HitNone, Index: -1}

// Options grow hit boxes to a minimum touch size. Nil fields leave the
// visual size as is.
type Options struct {
	MinStepTouchSize     *float64
	MinProgressTouchSize *float64
}

// Find tests step icons in order, then the progress icon. Each hit box is the
// larger of the icon's visual size and its minimum touch size, centered on
// the icon. Edges count as inside, and the first match wins.
func Find(layout *tltarget.Layout, stepIconSize, progressIconSize, x, y float64, opts *Options) Hit {
	if layout == nil {
		return None
	}
	if opts == nil {
		opts = &Options{}
	}
	p := geo.NewPoint(x, y)

	stepSize := touchSize(stepIconSize, opts.MinStepTouchSize)
	for _, sl := range layout.Steps {
		if geo.NewCenteredBox(sl.Icon(), stepSize).Contains(p) {
			return Hit{Kind: HitStep, Index: sl.Index}
		}
	}

	if layout.ProgressIcon != nil {
		if geo.NewCenteredBox(layout.ProgressIcon, touchSize(progressIconSize, opts.MinProgressTouchSize)).Contains(p) {
			return Hit{Kind: HitProgressIcon, Index: -1}
		}
	}
	return None
}

func touchSize(visual float64, minimum *float64) float64 {
	visual = geo.NonNegative(visual)
	if minimum == nil {
		return visual
	}
	return math.Max(visual, geo.NonNegative(*minimum))
}
