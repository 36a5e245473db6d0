package tlsnake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/tlconfig"
	"oss.terrastruct.com/timeline/tllayouts/tlsnake"
	"oss.terrastruct.com/timeline/tlstep"
	"oss.terrastruct.com/timeline/tltarget"
)

const width = 400.

func config() tlconfig.Config {
	return tlconfig.Default().WithSpacing(tlconfig.Spacing{
		StepY:                  100,
		StepYFirst:             20,
		MarginTopTitle:         4,
		MarginTopDescription:   2,
		MarginTopProgressIcon:  3,
		MarginHorizontalImage:  10,
		MarginHorizontalText:   8,
		MarginHorizontalStroke: 40,
	})
}

func steps(percents ...int) []tlstep.Step {
	var ss []tlstep.Step
	for _, p := range percents {
		ss = append(ss, tlstep.New("title", "description", "on", "off", p))
	}
	return ss
}

func TestTotalVerticalExtent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		percents []int
		wantDY   float64
	}{
		{name: "one", percents: []int{100}, wantDY: 20},
		{name: "two", percents: []int{100, 0}, wantDY: 20 + 50},
		{name: "four", percents: []int{100, 100, 40, 0}, wantDY: 20 + 100*2 + 50},
		{name: "empty", percents: []int{0, 0, 0}, wantDY: 20 + 100 + 50},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e := tlsnake.New()
			ss := steps(tc.percents...)
			paths := e.BuildPath(ss, config(), width)
			_, dy := paths.AxisLengths()
			assert.InDelta(t, tc.wantDY, dy, 1e-9)

			_, h := e.Extent(ss, config(), width)
			assert.InDelta(t, tc.wantDY, h, 1e-9)
		})
	}
}

func TestHorizontalRuns(t *testing.T) {
	t.Parallel()

	e := tlsnake.New()
	ss := steps(100, 100, 100)

	// START: the first run is empty, then two full runs
	paths := e.BuildPath(ss, config(), width)
	dx, _ := paths.AxisLengths()
	assert.InDelta(t, 2*(width-80), dx, 1e-9)

	// CENTER: the first run covers half of the inner width
	cfg := config().WithStartPosition(tlconfig.StartPositionCenter)
	paths = e.BuildPath(ss, cfg, width)
	dx, _ = paths.AxisLengths()
	assert.InDelta(t, (width/2-40)+2*(width-80), dx, 1e-9)
}

func TestAllComplete(t *testing.T) {
	t.Parallel()

	e := tlsnake.New()
	ss := steps(100, 100, 100)
	paths := e.BuildPath(ss, config(), width)
	assert.True(t, paths.Remaining.IsEmpty())
	assert.False(t, paths.Completed.IsEmpty())

	layout := e.BuildLayout(ss, config(), width)
	assert.Nil(t, layout.ProgressIcon)
}

func TestAllIncomplete(t *testing.T) {
	t.Parallel()

	e := tlsnake.New()
	ss := steps(0, 0, 0)
	paths := e.BuildPath(ss, config(), width)
	assert.True(t, paths.Completed.IsEmpty())
	assert.False(t, paths.Remaining.IsEmpty())

	layout := e.BuildLayout(ss, config(), width)
	require.NotNil(t, layout.ProgressIcon)
	assert.True(t, layout.ProgressIcon.Equals(geo.NewPoint(40, 3)))
}

func TestPercentSplit(t *testing.T) {
	t.Parallel()

	e := tlsnake.New()
	ss := steps(100, 25, 100)
	cfg := config()
	paths := e.BuildPath(ss, cfg, width)

	run := width - 80
	cdx, cdy := paths.Completed.AxisLengths()
	assert.InDelta(t, run*.25, cdx, 1e-9)
	assert.InDelta(t, 20., cdy, 1e-9)

	// the last step is at 100% but comes after the split
	rdx, rdy := paths.Remaining.AxisLengths()
	assert.InDelta(t, run*.75+run, rdx, 1e-9)
	assert.InDelta(t, 100.+50, rdy, 1e-9)

	layout := e.BuildLayout(ss, cfg, width)
	require.NotNil(t, layout.ProgressIcon)
	assert.True(t, layout.ProgressIcon.Equals(geo.NewPoint(40+run*.25, 20+3)))

	// the split starts a new remaining route
	routes := paths.Remaining.Routes()
	require.Len(t, routes, 1)
	assert.True(t, routes[0][0].Equals(geo.NewPoint(40+run*.25, 20)))
}

func TestMonotonicTransition(t *testing.T) {
	t.Parallel()

	e := tlsnake.New()
	complete := e.BuildPath(steps(100, 100, 100, 100), config(), width)
	mixed := e.BuildPath(steps(100, 0, 100, 100), config(), width)

	_, totalDY := complete.AxisLengths()
	_, cdy := mixed.Completed.AxisLengths()
	_, rdy := mixed.Remaining.AxisLengths()
	assert.InDelta(t, 20., cdy, 1e-9)
	assert.InDelta(t, totalDY-20, rdy, 1e-9)
}

func TestSplitOnDrop(t *testing.T) {
	t.Parallel()

	// the first run is empty for START, so the split moves to the drop
	e := tlsnake.New()
	layout := e.BuildLayout(steps(50, 0), config(), width)
	require.NotNil(t, layout.ProgressIcon)
	assert.True(t, layout.ProgressIcon.Equals(geo.NewPoint(40, 10+3)))
}

func TestLayoutSides(t *testing.T) {
	t.Parallel()

	e := tlsnake.New()
	cfg := config()
	layout := e.BuildLayout(steps(100, 100, 0), cfg, width)
	require.Len(t, layout.Steps, 3)

	s0 := layout.Steps[0]
	assert.Equal(t, tltarget.AlignLeft, s0.TextAlign)
	assert.Equal(t, 40., s0.IconX)
	assert.Equal(t, 20., s0.IconY)
	assert.Equal(t, 40.+16+10, s0.TitleX)
	assert.Equal(t, 24., s0.TitleY)
	assert.Equal(t, 24.+tlconfig.DEFAULT_TITLE_TEXT_SIZE+2, s0.DescriptionY)
	assert.Equal(t, width-40-s0.TitleX-8, s0.DescriptionMaxWidth)

	s1 := layout.Steps[1]
	assert.Equal(t, tltarget.AlignRight, s1.TextAlign)
	assert.Equal(t, width-40, s1.IconX)
	assert.Equal(t, 120., s1.IconY)
	assert.Equal(t, width-40-26, s1.TitleX)
	assert.Equal(t, s1.TitleX-40-8, s1.DescriptionMaxWidth)

	s2 := layout.Steps[2]
	assert.Equal(t, tltarget.AlignLeft, s2.TextAlign)
	assert.Equal(t, 40., s2.IconX)
	assert.Equal(t, 170., s2.IconY)
}

func TestNarrowContainer(t *testing.T) {
	t.Parallel()

	e := tlsnake.New()
	layout := e.BuildLayout(steps(100, 0), config(), 50)
	for _, sl := range layout.Steps {
		assert.GreaterOrEqual(t, sl.DescriptionMaxWidth, 0.)
	}
}

func TestNoSteps(t *testing.T) {
	t.Parallel()

	e := tlsnake.New()
	paths := e.BuildPath(nil, config(), width)
	assert.True(t, paths.Completed.IsEmpty())
	assert.True(t, paths.Remaining.IsEmpty())

	layout := e.BuildLayout(nil, config(), width)
	assert.Empty(t, layout.Steps)
	assert.Nil(t, layout.ProgressIcon)

	w, h := e.Extent(nil, config(), width)
	assert.Equal(t, 0., w)
	assert.Equal(t, 0., h)
}
