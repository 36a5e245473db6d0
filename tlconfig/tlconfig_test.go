package tlconfig_test

import (
	imgcolor "image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/timeline/lib/color"
	"oss.terrastruct.com/timeline/tlconfig"
)

func TestNegativeSpacingClamps(t *testing.T) {
	t.Parallel()

	s := tlconfig.NewSpacing(tlconfig.Spacing{StepY: -10, StepYFirst: -1, MarginHorizontalStroke: 5})
	assert.Equal(t, 0., s.StepY)
	assert.Equal(t, 0., s.StepYFirst)
	assert.Equal(t, 5., s.MarginHorizontalStroke)

	sz := tlconfig.NewSizes(tlconfig.Sizes{ImageLvl: -3, IconProgress: 12})
	assert.Equal(t, 0., sz.ImageLvl)
	assert.Equal(t, 12., sz.MaxIcon())

	st := tlconfig.NewStyle(tlconfig.Style{StrokeWidth: -2, CornerRadius: -8, ProgressColor: color.MustParse("#ff0000")})
	assert.Equal(t, 0., st.StrokeWidth)
	assert.Equal(t, 0., st.CornerRadius)
	assert.Equal(t, tlconfig.DEFAULT_TYPEFACE, st.Typeface)
}

func TestCopyOnWrite(t *testing.T) {
	t.Parallel()

	base := tlconfig.Default()
	next := base.WithSpacing(base.Spacing.WithStepY(-5, 10))

	assert.Equal(t, tlconfig.DEFAULT_STEP_Y, base.Spacing.StepY)
	assert.Equal(t, 0., next.Spacing.StepY)
	assert.Equal(t, 10., next.Spacing.StepYFirst)

	centered := base.WithStartPosition(tlconfig.StartPositionCenter)
	assert.Equal(t, tlconfig.StartPositionStart, base.StartPosition)
	assert.Equal(t, tlconfig.StartPositionCenter, centered.StartPosition)

	horizontal := base.WithOrientation(tlconfig.Horizontal)
	assert.Equal(t, tlconfig.Vertical, base.Orientation)
	assert.Equal(t, tlconfig.Horizontal, horizontal.Orientation)
}

func TestDerivedStrokeColor(t *testing.T) {
	t.Parallel()

	progress := color.MustParse("#0d9488")
	st := tlconfig.Default().Style.WithColors(progress, imgcolor.RGBA{}, progress, progress)
	assert.False(t, color.IsZero(st.StrokeColor))
	assert.NotEqual(t, progress, st.StrokeColor)

	explicit := color.MustParse("#123456")
	st = st.WithColors(progress, explicit, progress, progress)
	assert.Equal(t, explicit, st.StrokeColor)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	c := tlconfig.Config{
		Spacing:       tlconfig.Spacing{StepY: -1},
		Text:          tlconfig.TextOptions{Mode: 42, MaxLines: -3},
		StartPosition: 9,
		Orientation:   7,
	}.Normalize()

	assert.Equal(t, 0., c.Spacing.StepY)
	assert.Equal(t, tlconfig.SingleLine, c.Text.Mode)
	assert.Equal(t, 0, c.Text.MaxLines)
	assert.Equal(t, tlconfig.StartPositionStart, c.StartPosition)
	assert.Equal(t, tlconfig.Vertical, c.Orientation)
}

func TestTextStyles(t *testing.T) {
	t.Parallel()

	c := tlconfig.Default().WithText(tlconfig.TextOptions{Mode: tlconfig.EllipsizeEnd, MaxLines: 2})
	title := c.TitleTextStyle()
	assert.Equal(t, tlconfig.SingleLine, title.Mode)
	assert.Equal(t, tlconfig.DEFAULT_TITLE_TEXT_SIZE, title.Size)

	desc := c.DescriptionTextStyle()
	assert.Equal(t, tlconfig.EllipsizeEnd, desc.Mode)
	assert.Equal(t, 2, desc.MaxLines)
	assert.Equal(t, tlconfig.DEFAULT_DESCRIPTION_TEXT_SIZE, desc.Size)
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "start", want: "start"},
		{in: " CENTER ", want: "center"},
		{in: "end", want: "end"},
		{in: "middle", wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			p, err := tlconfig.ParseStartPosition(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}

	o, err := tlconfig.ParseOrientation("horizontal")
	require.NoError(t, err)
	assert.Equal(t, tlconfig.Horizontal, o)
	_, err = tlconfig.ParseOrientation("diagonal")
	assert.Error(t, err)

	m, err := tlconfig.ParseTextMode("ellipsize_end")
	require.NoError(t, err)
	assert.Equal(t, "ellipsize_end", m.String())
	_, err = tlconfig.ParseTextMode("wrap")
	assert.Error(t, err)
}
