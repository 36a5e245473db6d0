// Package tllayouts defines the geometry engine contract and the height
// calculation shared by every engine.
package tllayouts

import (
	"math"

	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/tlconfig"
	"oss.terrastruct.com/timeline/tlstep"
	"oss.terrastruct.com/timeline/tltarget"
)

// Engine computes timeline geometry. Implementations are pure: the same
// inputs always produce the same outputs and nothing is retained between
// calls.
type Engine interface {
	// BuildPath traces the completed and remaining paths.
	BuildPath(steps []tlstep.Step, cfg tlconfig.Config, width float64) tltarget.Paths
	// BuildLayout places every step's icon and text, and the progress icon.
	BuildLayout(steps []tlstep.Step, cfg tlconfig.Config, width float64) *tltarget.Layout
	// Extent is the size of the box the path occupies, starting at the
	// container's origin.
	Extent(steps []tlstep.Step, cfg tlconfig.Config, width float64) (w, h float64)
}

// TextMeasurer reports the rendered height of text wrapped at maxWidth.
type TextMeasurer interface {
	MeasureHeight(text string, style tlconfig.TextStyle, maxWidth float64) float64
}

// CalculateHeight returns the height a container needs to hold both the
// path drawn by e and the lowest block of text in layout.
func CalculateHeight(e Engine, cfg tlconfig.Config, layout *tltarget.Layout, m TextMeasurer) float64 {
	if layout.Empty() {
		return 0
	}
	steps := make([]tlstep.Step, 0, len(layout.Steps))
	for _, sl := range layout.Steps {
		steps = append(steps, sl.Step)
	}

	_, h := e.Extent(steps, cfg, layout.Width)
	geometric := h + cfg.Sizes.MaxIcon()/2 + cfg.Style.StrokeWidth/2

	text := 0.
	titleStyle := cfg.TitleTextStyle()
	descStyle := cfg.DescriptionTextStyle()
	for _, sl := range layout.Steps {
		if title := sl.Step.Title(); title != "" {
			text = math.Max(text, sl.TitleY+m.MeasureHeight(title, titleStyle, sl.DescriptionMaxWidth))
		}
		if desc := sl.Step.Description(); desc != "" {
			text = math.Max(text, sl.DescriptionY+m.MeasureHeight(desc, descStyle, sl.DescriptionMaxWidth))
		}
	}

	return math.Ceil(math.Max(geometric, text))
}

// AnchorX is where a timeline starts across a container of the given width.
func AnchorX(p tlconfig.StartPosition, width, margin float64) float64 {
	switch p {
	case tlconfig.StartPositionCenter:
		return width / 2
	case tlconfig.StartPositionEnd:
		return geo.NonNegative(width - margin)
	default:
		return margin
	}
}
