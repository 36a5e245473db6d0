package svg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/lib/svg"
)

func TestPathData(t *testing.T) {
	r := geo.Route{geo.NewPoint(0, 0), geo.NewPoint(10, 0), geo.NewPoint(10, 10)}
	assert.Equal(t, "M 0 0 L 10 0 L 10 10", svg.PathData(r.Rounded(0)))
	assert.Equal(t, "M 0 0 L 5 0 Q 10 0 10 5 L 10 10", svg.PathData(r.Rounded(5)))
	assert.Equal(t, "L 0.3333 2", svg.PathData([]geo.PathCmd{{Op: geo.LineTo, To: geo.NewPoint(1./3, 2)}}))
	assert.Equal(t, "", svg.PathData(nil))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "12", svg.Num(12))
	assert.Equal(t, "0.3333", svg.Num(1./3))
	assert.Equal(t, "-4.5", svg.Num(-4.5))
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "a &lt; b &amp; c", svg.EscapeText("a < b & c"))
}
