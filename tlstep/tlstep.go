// Package tlstep holds the step data a timeline is built from.
package tlstep

import "math/bits"

// IconHandle identifies an icon resource for the host's bitmap provider.
// The empty handle means no icon.
type IconHandle string

// Step is an immutable timeline milestone. Use New to construct one; the zero
// value is an empty step at 0%.
type Step struct {
	title        string
	description  string
	iconActive   IconHandle
	iconDisabled IconHandle
	percent      int
}

// New returns a step with percent clamped into [0, 100].
func New(title, description string, iconActive, iconDisabled IconHandle, percent int) Step {
	return Step{
		title:        title,
		description:  description,
		iconActive:   iconActive,
		iconDisabled: iconDisabled,
		percent:      clampPercent(percent),
	}
}

func (s Step) Title() string            { return s.title }
func (s Step) Description() string      { return s.description }
func (s Step) IconActive() IconHandle   { return s.iconActive }
func (s Step) IconDisabled() IconHandle { return s.iconDisabled }
func (s Step) Percent() int             { return s.percent }

// Complete reports whether the step is at 100%.
func (s Step) Complete() bool {
	return s.percent == 100
}

// Icon returns the handle to draw for the step's current state. Incomplete
// steps without a disabled icon fall back to the active one.
func (s Step) Icon() IconHandle {
	if s.Complete() || s.iconDisabled == "" {
		return s.iconActive
	}
	return s.iconDisabled
}

func (s Step) WithPercent(percent int) Step {
	s.percent = clampPercent(percent)
	return s
}

func (s Step) WithIcons(active, disabled IconHandle) Step {
	s.iconActive = active
	s.iconDisabled = disabled
	return s
}

func (s Step) WithText(title, description string) Step {
	s.title = title
	s.description = description
	return s
}

// Percents converts a count of finished units into a step percentage.
// maxCount <= 0 yields 0.
func Percents(count, maxCount int) int {
	switch {
	case maxCount <= 0, count <= 0:
		return 0
	case count >= maxCount:
		return 100
	}
	// count < maxCount keeps the high word below the divisor.
	hi, lo := bits.Mul64(uint64(count), 100)
	q, _ := bits.Div64(hi, lo, uint64(maxCount))
	return int(q)
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// FirstIncomplete returns the index of the first step below 100%, or -1.
// Layout engines switch from the completed to the remaining path there.
func FirstIncomplete(steps []Step) int {
	for i, s := range steps {
		if !s.Complete() {
			return i
		}
	}
	return -1
}
