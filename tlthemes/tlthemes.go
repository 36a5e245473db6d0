// tlthemes defines color themes for timelines
package tlthemes

import (
	"fmt"
	imgcolor "image/color"

	"oss.terrastruct.com/timeline/lib/color"
	"oss.terrastruct.com/timeline/lib/textmeasure"
	"oss.terrastruct.com/timeline/tlconfig"
)

type Theme struct {
	ID     int64        `json:"id"`
	Name   string       `json:"name"`
	Colors ColorPalette `json:"colors"`
	Rules  SpecialRules `json:"rules"`
}

type ColorPalette struct {
	// Progress draws the completed path, Stroke the remaining one.
	Progress    string `json:"progress"`
	Stroke      string `json:"stroke"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Background  string `json:"background"`
}

type SpecialRules struct {
	Mono           bool `json:"mono"`
	NoCornerRadius bool `json:"noCornerRadius"`
}

func (t Theme) IsDark() bool {
	return t.ID >= 200 && t.ID < 300
}

// Apply returns cfg styled with t.
func (t Theme) Apply(cfg tlconfig.Config) (tlconfig.Config, error) {
	progress, err := color.Parse(t.Colors.Progress)
	if err != nil {
		return cfg, fmt.Errorf("theme %q: progress: %w", t.Name, err)
	}
	stroke, err := color.Parse(t.Colors.Stroke)
	if err != nil {
		return cfg, fmt.Errorf("theme %q: stroke: %w", t.Name, err)
	}
	title, err := color.Parse(t.Colors.Title)
	if err != nil {
		return cfg, fmt.Errorf("theme %q: title: %w", t.Name, err)
	}
	desc, err := color.Parse(t.Colors.Description)
	if err != nil {
		return cfg, fmt.Errorf("theme %q: description: %w", t.Name, err)
	}

	style := cfg.Style.WithColors(progress, stroke, title, desc)
	if t.Rules.Mono {
		style.Typeface = textmeasure.TYPEFACE_MONO
	}
	if t.Rules.NoCornerRadius {
		style.CornerRadius = 0
	}
	return cfg.WithStyle(style), nil
}

// Background is the canvas fill, transparent when the theme has none.
func (t Theme) Background() (imgcolor.RGBA, error) {
	if t.Colors.Background == "" {
		return imgcolor.RGBA{}, nil
	}
	return color.Parse(t.Colors.Background)
}
