package geo

type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

// NewCenteredBox returns a size x size box centered on c.
func NewCenteredBox(c *Point, size float64) *Box {
	return NewBox(NewPoint(c.X-size/2, c.Y-size/2), size, size)
}

// Contains reports whether p lies inside b, edges included.
func (b *Box) Contains(p *Point) bool {
	return p.X >= b.TopLeft.X && p.X <= b.TopLeft.X+b.Width &&
		p.Y >= b.TopLeft.Y && p.Y <= b.TopLeft.Y+b.Height
}
