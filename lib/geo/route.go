package geo

import (
	"math"
)

type Route []*Point

func (route Route) Length() float64 {
	l := 0.
	for i := 0; i < len(route)-1; i++ {
		l += EuclideanDistance(
			route[i].X, route[i].Y,
			route[i+1].X, route[i+1].Y,
		)
	}
	return l
}

func (route Route) Segments() []Segment {
	if len(route) < 2 {
		return nil
	}
	segments := make([]Segment, 0, len(route)-1)
	for i := 0; i < len(route)-1; i++ {
		segments = append(segments, Segment{Start: route[i], End: route[i+1]})
	}
	return segments
}

// return the point at _distance_ along the route, and the index of the segment it's on
func (route Route) GetPointAtDistance(distance float64) (*Point, int) {
	remaining := distance
	for i := 0; i < len(route)-1; i++ {
		curr, next := route[i], route[i+1]
		length := EuclideanDistance(curr.X, curr.Y, next.X, next.Y)

		if remaining <= length {
			if length == 0 {
				return curr.Copy(), i
			}
			return curr.Interpolate(next, remaining/length), i
		}
		remaining -= length
	}

	return nil, -1
}

// Rounded converts the route into path commands where every interior corner is
// replaced by a quadratic curve of the given radius. The radius used at a
// corner never exceeds half of either adjacent segment.
func (route Route) Rounded(radius float64) []PathCmd {
	if len(route) < 2 {
		return nil
	}
	cmds := []PathCmd{{Op: MoveTo, To: route[0].Copy()}}
	for i := 1; i < len(route)-1; i++ {
		prev, corner, next := route[i-1], route[i], route[i+1]
		r := math.Min(radius, math.Min(prev.DistanceTo(corner), corner.DistanceTo(next))/2)
		if r <= 0 || collinear(prev, corner, next) {
			cmds = append(cmds, PathCmd{Op: LineTo, To: corner.Copy()})
			continue
		}
		cmds = append(cmds,
			PathCmd{Op: LineTo, To: corner.Towards(prev, r)},
			PathCmd{Op: QuadTo, Ctrl: corner.Copy(), To: corner.Towards(next, r)},
		)
	}
	return append(cmds, PathCmd{Op: LineTo, To: route[len(route)-1].Copy()})
}

func collinear(a, b, c *Point) bool {
	return PrecisionCompare((b.X-a.X)*(c.Y-a.Y), (b.Y-a.Y)*(c.X-a.X), 1e-9) == 0
}
