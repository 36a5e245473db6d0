package geo

import "math"

type Segment struct {
	Start *Point
	End   *Point
}

func (segment Segment) Length() float64 {
	return EuclideanDistance(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
}

// DX and DY are the absolute extents of the segment along each axis.
func (segment Segment) DX() float64 {
	return math.Abs(segment.End.X - segment.Start.X)
}

func (segment Segment) DY() float64 {
	return math.Abs(segment.End.Y - segment.Start.Y)
}
