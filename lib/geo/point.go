package geo

import (
	"fmt"
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

func (p *Point) Copy() *Point {
	if p == nil {
		return nil
	}
	return &Point{X: p.X, Y: p.Y}
}

// Add returns p moved by (dx, dy).
func (p *Point) Add(dx, dy float64) *Point {
	return NewPoint(p.X+dx, p.Y+dy)
}

func (p *Point) DistanceTo(p2 *Point) float64 {
	return EuclideanDistance(p.X, p.Y, p2.X, p2.Y)
}

// point t% of the way between a and b
func (a *Point) Interpolate(b *Point, t float64) *Point {
	return NewPoint(
		a.X*(1.0-t)+b.X*t,
		a.Y*(1.0-t)+b.Y*t,
	)
}

// Towards returns the point at distance d from a in the direction of b.
// d is clamped to the length of ab.
func (a *Point) Towards(b *Point, d float64) *Point {
	l := a.DistanceTo(b)
	if l == 0 {
		return a.Copy()
	}
	return a.Interpolate(b, math.Min(d, l)/l)
}

func (p *Point) ToString() string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
