// Package tlconfig holds timeline geometry and styling options.
//
// Every type here is a value. The With* methods return normalized copies and
// never modify the receiver, so a Config handed to a measure or draw pass
// cannot change underneath it.
package tlconfig

import (
	imgcolor "image/color"

	"oss.terrastruct.com/timeline/lib/color"
	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/tlstep"
)

const (
	DEFAULT_STEP_Y                   = 120.
	DEFAULT_STEP_Y_FIRST             = 40.
	DEFAULT_MARGIN_TOP_TITLE         = 8.
	DEFAULT_MARGIN_TOP_DESCRIPTION   = 4.
	DEFAULT_MARGIN_TOP_PROGRESS_ICON = 0.
	DEFAULT_MARGIN_HORIZONTAL_IMAGE  = 12.
	DEFAULT_MARGIN_HORIZONTAL_TEXT   = 16.
	DEFAULT_MARGIN_HORIZONTAL_STROKE = 40.

	DEFAULT_SIZE_IMAGE_LVL     = 32.
	DEFAULT_SIZE_ICON_PROGRESS = 24.

	DEFAULT_STROKE_WIDTH          = 6.
	DEFAULT_CORNER_RADIUS         = 24.
	DEFAULT_TITLE_TEXT_SIZE       = 16.
	DEFAULT_DESCRIPTION_TEXT_SIZE = 13.
	DEFAULT_TYPEFACE              = "regular"

	// lightness added to the progress color when no stroke color is set
	derivedStrokeLightening = .35
)

var (
	DefaultProgressColor    = color.MustParse("#0d9488")
	DefaultStrokeColor      = color.MustParse("#cbd5e1")
	DefaultTitleColor       = color.MustParse("#0f172a")
	DefaultDescriptionColor = color.MustParse("#475569")
)

// Spacing is the pitch and margins of the timeline, in pixels.
type Spacing struct {
	// StepY is the distance between consecutive steps.
	StepY float64 `json:"stepY"`
	// StepYFirst is the distance from the container edge to the first step.
	StepYFirst float64 `json:"stepYFirst"`

	MarginTopTitle        float64 `json:"marginTopTitle"`
	MarginTopDescription  float64 `json:"marginTopDescription"`
	MarginTopProgressIcon float64 `json:"marginTopProgressIcon"`

	// MarginHorizontalImage is the gap between a step icon and its text.
	MarginHorizontalImage float64 `json:"marginHorizontalImage"`
	// MarginHorizontalText keeps text away from the opposite edge.
	MarginHorizontalText float64 `json:"marginHorizontalText"`
	// MarginHorizontalStroke insets the path from the container edges.
	MarginHorizontalStroke float64 `json:"marginHorizontalStroke"`
}

// NewSpacing returns s with negative values clamped to zero.
func NewSpacing(s Spacing) Spacing {
	return Spacing{
		StepY:                  geo.NonNegative(s.StepY),
		StepYFirst:             geo.NonNegative(s.StepYFirst),
		MarginTopTitle:         geo.NonNegative(s.MarginTopTitle),
		MarginTopDescription:   geo.NonNegative(s.MarginTopDescription),
		MarginTopProgressIcon:  geo.NonNegative(s.MarginTopProgressIcon),
		MarginHorizontalImage:  geo.NonNegative(s.MarginHorizontalImage),
		MarginHorizontalText:   geo.NonNegative(s.MarginHorizontalText),
		MarginHorizontalStroke: geo.NonNegative(s.MarginHorizontalStroke),
	}
}

func (s Spacing) WithStepY(stepY, stepYFirst float64) Spacing {
	s.StepY = stepY
	s.StepYFirst = stepYFirst
	return NewSpacing(s)
}

type Sizes struct {
	// ImageLvl is the step icon diameter.
	ImageLvl float64 `json:"sizeImageLvl"`
	// IconProgress is the progress marker diameter.
	IconProgress float64 `json:"sizeIconProgress"`
}

func NewSizes(s Sizes) Sizes {
	return Sizes{
		ImageLvl:     geo.NonNegative(s.ImageLvl),
		IconProgress: geo.NonNegative(s.IconProgress),
	}
}

// MaxIcon is the larger of the two icon diameters.
func (s Sizes) MaxIcon() float64 {
	if s.ImageLvl > s.IconProgress {
		return s.ImageLvl
	}
	return s.IconProgress
}

type Style struct {
	ProgressColor    imgcolor.RGBA `json:"progressColor"`
	StrokeColor      imgcolor.RGBA `json:"strokeColor"`
	TitleColor       imgcolor.RGBA `json:"titleColor"`
	DescriptionColor imgcolor.RGBA `json:"descriptionColor"`

	StrokeWidth  float64 `json:"strokeWidth"`
	CornerRadius float64 `json:"cornerRadius"`

	TitleTextSize       float64 `json:"titleTextSize"`
	DescriptionTextSize float64 `json:"descriptionTextSize"`
	Typeface            string  `json:"typeface"`

	// ProgressIcon is drawn where the completed path meets the remaining path.
	ProgressIcon tlstep.IconHandle `json:"progressIcon"`
}

// NewStyle clamps negative sizes and derives a missing stroke color from the
// progress color.
func NewStyle(s Style) Style {
	s.StrokeWidth = geo.NonNegative(s.StrokeWidth)
	s.CornerRadius = geo.NonNegative(s.CornerRadius)
	s.TitleTextSize = geo.NonNegative(s.TitleTextSize)
	s.DescriptionTextSize = geo.NonNegative(s.DescriptionTextSize)
	if color.IsZero(s.StrokeColor) {
		s.StrokeColor = color.Lighten(s.ProgressColor, derivedStrokeLightening)
	}
	if s.Typeface == "" {
		s.Typeface = DEFAULT_TYPEFACE
	}
	return s
}

func (s Style) WithColors(progress, stroke, title, description imgcolor.RGBA) Style {
	s.ProgressColor = progress
	s.StrokeColor = stroke
	s.TitleColor = title
	s.DescriptionColor = description
	return NewStyle(s)
}

func (s Style) WithProgressIcon(h tlstep.IconHandle) Style {
	s.ProgressIcon = h
	return s
}

type TextOptions struct {
	Mode TextMode `json:"mode"`
	// MaxLines caps wrapped descriptions. <= 0 means unlimited.
	MaxLines int `json:"maxLines"`
}

func NewTextOptions(o TextOptions) TextOptions {
	if o.MaxLines < 0 {
		o.MaxLines = 0
	}
	if o.Mode < SingleLine || o.Mode > EllipsizeEnd {
		o.Mode = SingleLine
	}
	return o
}

// TextStyle is what a text measurer needs to size a run of text.
type TextStyle struct {
	Size     float64
	Typeface string
	Mode     TextMode
	MaxLines int
}

type Config struct {
	Spacing       Spacing       `json:"spacing"`
	Sizes         Sizes         `json:"sizes"`
	Style         Style         `json:"style"`
	Text          TextOptions   `json:"text"`
	StartPosition StartPosition `json:"startPosition"`
	Orientation   Orientation   `json:"orientation"`
}

func Default() Config {
	return Config{
		Spacing: Spacing{
			StepY:                  DEFAULT_STEP_Y,
			StepYFirst:             DEFAULT_STEP_Y_FIRST,
			MarginTopTitle:         DEFAULT_MARGIN_TOP_TITLE,
			MarginTopDescription:   DEFAULT_MARGIN_TOP_DESCRIPTION,
			MarginTopProgressIcon:  DEFAULT_MARGIN_TOP_PROGRESS_ICON,
			MarginHorizontalImage:  DEFAULT_MARGIN_HORIZONTAL_IMAGE,
			MarginHorizontalText:   DEFAULT_MARGIN_HORIZONTAL_TEXT,
			MarginHorizontalStroke: DEFAULT_MARGIN_HORIZONTAL_STROKE,
		},
		Sizes: Sizes{
			ImageLvl:     DEFAULT_SIZE_IMAGE_LVL,
			IconProgress: DEFAULT_SIZE_ICON_PROGRESS,
		},
		Style: Style{
			ProgressColor:       DefaultProgressColor,
			StrokeColor:         DefaultStrokeColor,
			TitleColor:          DefaultTitleColor,
			DescriptionColor:    DefaultDescriptionColor,
			StrokeWidth:         DEFAULT_STROKE_WIDTH,
			CornerRadius:        DEFAULT_CORNER_RADIUS,
			TitleTextSize:       DEFAULT_TITLE_TEXT_SIZE,
			DescriptionTextSize: DEFAULT_DESCRIPTION_TEXT_SIZE,
			Typeface:            DEFAULT_TYPEFACE,
		},
		Text: TextOptions{Mode: MultiLine},
	}
}

// Normalize returns c with every section normalized. Hosts that build a
// Config literal should pass it through here.
func (c Config) Normalize() Config {
	c.Spacing = NewSpacing(c.Spacing)
	c.Sizes = NewSizes(c.Sizes)
	c.Style = NewStyle(c.Style)
	c.Text = NewTextOptions(c.Text)
	if c.StartPosition < StartPositionStart || c.StartPosition > StartPositionEnd {
		c.StartPosition = StartPositionStart
	}
	if c.Orientation != Horizontal {
		c.Orientation = Vertical
	}
	return c
}

func (c Config) WithSpacing(s Spacing) Config {
	c.Spacing = NewSpacing(s)
	return c
}

func (c Config) WithSizes(s Sizes) Config {
	c.Sizes = NewSizes(s)
	return c
}

func (c Config) WithStyle(s Style) Config {
	c.Style = NewStyle(s)
	return c
}

func (c Config) WithText(o TextOptions) Config {
	c.Text = NewTextOptions(o)
	return c
}

func (c Config) WithStartPosition(p StartPosition) Config {
	c.StartPosition = p
	return c.Normalize()
}

func (c Config) WithOrientation(o Orientation) Config {
	c.Orientation = o
	return c.Normalize()
}

// TitleTextStyle is always single line.
func (c Config) TitleTextStyle() TextStyle {
	return TextStyle{
		Size:     c.Style.TitleTextSize,
		Typeface: c.Style.Typeface,
		Mode:     SingleLine,
	}
}

func (c Config) DescriptionTextStyle() TextStyle {
	return TextStyle{
		Size:     c.Style.DescriptionTextSize,
		Typeface: c.Style.Typeface,
		Mode:     c.Text.Mode,
		MaxLines: c.Text.MaxLines,
	}
}
