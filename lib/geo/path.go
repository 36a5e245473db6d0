package geo

type PathOp int

const (
	MoveTo PathOp = iota
	LineTo
	// QuadTo draws a quadratic curve through Ctrl to To.
	QuadTo
)

type PathCmd struct {
	Op   PathOp
	Ctrl *Point
	To   *Point
}

// Path is a pen trace made of disconnected sub-routes. Each MoveTo starts a
// new sub-route; LineTo extends the current one.
type Path []Route

func (p *Path) MoveTo(pt *Point) {
	if n := len(*p); n > 0 && len((*p)[n-1]) < 2 {
		// a move that drew nothing is replaced
		(*p)[n-1] = Route{pt.Copy()}
		return
	}
	*p = append(*p, Route{pt.Copy()})
}

// LineTo draws from the current point to pt. Zero-length lines are dropped.
// Without a current point, LineTo behaves like MoveTo.
func (p *Path) LineTo(pt *Point) {
	n := len(*p)
	if n == 0 {
		p.MoveTo(pt)
		return
	}
	r := (*p)[n-1]
	if r[len(r)-1].Equals(pt) {
		return
	}
	(*p)[n-1] = append(r, pt.Copy())
}

// Current returns the pen position, or nil for an empty path.
func (p Path) Current() *Point {
	if len(p) == 0 {
		return nil
	}
	r := p[len(p)-1]
	return r[len(r)-1].Copy()
}

// Routes returns the sub-routes that contain at least one segment.
func (p Path) Routes() []Route {
	var routes []Route
	for _, r := range p {
		if len(r) >= 2 {
			routes = append(routes, r)
		}
	}
	return routes
}

func (p Path) Segments() []Segment {
	var segments []Segment
	for _, r := range p {
		segments = append(segments, r.Segments()...)
	}
	return segments
}

func (p Path) Length() float64 {
	l := 0.
	for _, r := range p {
		l += r.Length()
	}
	return l
}

// AxisLengths sums the horizontal and vertical extents of every segment.
func (p Path) AxisLengths() (dx, dy float64) {
	for _, s := range p.Segments() {
		dx += s.DX()
		dy += s.DY()
	}
	return dx, dy
}

func (p Path) IsEmpty() bool {
	return len(p.Routes()) == 0
}

// Rounded converts every sub-route with Route.Rounded.
func (p Path) Rounded(radius float64) []PathCmd {
	var cmds []PathCmd
	for _, r := range p.Routes() {
		cmds = append(cmds, r.Rounded(radius)...)
	}
	return cmds
}
