package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/timeline/lib/geo"
)

func TestPathPen(t *testing.T) {
	var p geo.Path
	p.MoveTo(geo.NewPoint(0, 0))
	p.LineTo(geo.NewPoint(10, 0))
	p.LineTo(geo.NewPoint(10, 0))
	p.LineTo(geo.NewPoint(10, 5))
	p.MoveTo(geo.NewPoint(20, 20))
	p.MoveTo(geo.NewPoint(30, 30))
	p.LineTo(geo.NewPoint(30, 40))

	routes := p.Routes()
	assert.Len(t, routes, 2)
	assert.Len(t, routes[0], 3)
	assert.True(t, routes[1][0].Equals(geo.NewPoint(30, 30)))

	dx, dy := p.AxisLengths()
	assert.Equal(t, 10., dx)
	assert.Equal(t, 15., dy)
	assert.Equal(t, 25., p.Length())
	assert.True(t, p.Current().Equals(geo.NewPoint(30, 40)))
}

func TestEmptyPath(t *testing.T) {
	var p geo.Path
	assert.True(t, p.IsEmpty())
	assert.Nil(t, p.Current())

	p.MoveTo(geo.NewPoint(1, 1))
	assert.True(t, p.IsEmpty())
	assert.Nil(t, p.Rounded(10))
}

func TestRoundedCorners(t *testing.T) {
	r := geo.Route{
		geo.NewPoint(0, 0),
		geo.NewPoint(100, 0),
		geo.NewPoint(100, 10),
		geo.NewPoint(100, 50),
	}
	cmds := r.Rounded(20)

	assert.Equal(t, geo.MoveTo, cmds[0].Op)
	// corner at (100, 0): the short 10px leg limits the radius to 5
	assert.Equal(t, geo.LineTo, cmds[1].Op)
	assert.True(t, cmds[1].To.Equals(geo.NewPoint(95, 0)))
	assert.Equal(t, geo.QuadTo, cmds[2].Op)
	assert.True(t, cmds[2].Ctrl.Equals(geo.NewPoint(100, 0)))
	assert.True(t, cmds[2].To.Equals(geo.NewPoint(100, 5)))
	// (100, 10) is collinear and stays a plain line
	assert.Equal(t, geo.LineTo, cmds[3].Op)
	assert.True(t, cmds[3].To.Equals(geo.NewPoint(100, 10)))
	assert.True(t, cmds[len(cmds)-1].To.Equals(geo.NewPoint(100, 50)))

	flat := r.Rounded(0)
	for _, c := range flat {
		assert.NotEqual(t, geo.QuadTo, c.Op)
	}
}

func TestGetPointAtDistance(t *testing.T) {
	r := geo.Route{geo.NewPoint(0, 0), geo.NewPoint(0, 10), geo.NewPoint(10, 10)}
	p, i := r.GetPointAtDistance(15)
	assert.Equal(t, 1, i)
	assert.True(t, p.Equals(geo.NewPoint(5, 10)))

	p, i = r.GetPointAtDistance(30)
	assert.Nil(t, p)
	assert.Equal(t, -1, i)
}
