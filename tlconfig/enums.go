package tlconfig

import (
	"fmt"
	"strings"
)

// StartPosition anchors where the timeline starts across the container.
type StartPosition int

const (
	StartPositionStart StartPosition = iota
	StartPositionCenter
	StartPositionEnd
)

func (p StartPosition) String() string {
	switch p {
	case StartPositionCenter:
		return "center"
	case StartPositionEnd:
		return "end"
	default:
		return "start"
	}
}

func ParseStartPosition(s string) (StartPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return StartPositionStart, nil
	case "center":
		return StartPositionCenter, nil
	case "end":
		return StartPositionEnd, nil
	}
	return StartPositionStart, fmt.Errorf("unknown start position %q", s)
}

// Orientation is the direction a linear timeline advances in.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown orientation %q", s)
}

// TextMode controls how descriptions wrap.
type TextMode int

const (
	// SingleLine clips text to one line.
	SingleLine TextMode = iota
	// MultiLine wraps up to MaxLines, unlimited when unset.
	MultiLine
	// EllipsizeEnd wraps like MultiLine and truncates the last line with an ellipsis.
	EllipsizeEnd
)

func (m TextMode) String() string {
	switch m {
	case MultiLine:
		return "multi_line"
	case EllipsizeEnd:
		return "ellipsize_end"
	default:
		return "single_line"
	}
}

func ParseTextMode(s string) (TextMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single_line":
		return SingleLine, nil
	case "multi_line":
		return MultiLine, nil
	case "ellipsize_end":
		return EllipsizeEnd, nil
	}
	return SingleLine, fmt.Errorf("unknown text mode %q", s)
}
