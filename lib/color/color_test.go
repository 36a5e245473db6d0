package color_test

import (
	imgcolor "image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/timeline/lib/color"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		exp  imgcolor.RGBA
	}{
		{name: "hex", in: "#0d9488", exp: imgcolor.RGBA{R: 0x0d, G: 0x94, B: 0x88, A: 0xff}},
		{name: "named", in: "white", exp: imgcolor.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{name: "rgb", in: "rgb(255, 0, 0)", exp: imgcolor.RGBA{R: 255, A: 255}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c, err := color.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, c)
		})
	}

	_, err := color.Parse("not-a-color")
	assert.Error(t, err)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#0d9488", color.Hex(color.MustParse("#0d9488")))
}

func TestLighten(t *testing.T) {
	c := color.MustParse("#0d9488")
	l := color.Lighten(c, .3)
	assert.Equal(t, c.A, l.A)
	assert.Greater(t, int(l.R)+int(l.G)+int(l.B), int(c.R)+int(c.G)+int(c.B))

	assert.Equal(t, imgcolor.RGBA{R: 255, G: 255, B: 255, A: 255}, color.Lighten(imgcolor.RGBA{R: 255, G: 255, B: 255, A: 255}, .5))
}
