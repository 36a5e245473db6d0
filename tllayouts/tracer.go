package tllayouts

import (
	"oss.terrastruct.com/timeline/lib/geo"
	"oss.terrastruct.com/timeline/tlstep"
	"oss.terrastruct.com/timeline/tltarget"
)

// Tracer walks a timeline step by step and sorts each step's leg onto the
// completed or remaining path.
//
// Steps before the first incomplete step go on the completed path. The first
// incomplete step is split on its first non-empty segment at its percentage.
// Everything after goes on the remaining path, whatever its own percentage.
type Tracer struct {
	paths    tltarget.Paths
	pen      *geo.Point
	split    int
	progress *geo.Point
}

func NewTracer(steps []tlstep.Step, start *geo.Point) *Tracer {
	t := &Tracer{
		pen:   start.Copy(),
		split: tlstep.FirstIncomplete(steps),
	}
	t.paths.Completed.MoveTo(start)
	return t
}

// Leg draws step i from the pen through pts.
func (t *Tracer) Leg(i int, s tlstep.Step, pts ...*geo.Point) {
	switch {
	case t.split < 0 || i < t.split:
		for _, p := range pts {
			t.paths.Completed.LineTo(p)
		}
	case i > t.split:
		for _, p := range pts {
			t.paths.Remaining.LineTo(p)
		}
	default:
		t.splitLeg(s.Percent(), pts)
	}
	if len(pts) > 0 {
		t.pen = pts[len(pts)-1].Copy()
	}
}

func (t *Tracer) splitLeg(percent int, pts []*geo.Point) {
	route := append(geo.Route{t.pen}, pts...)
	first := 0.
	for i := 0; i < len(pts) && first == 0; i++ {
		first = route[i].DistanceTo(route[i+1])
	}
	if first == 0 {
		for _, p := range pts {
			t.paths.Completed.LineTo(p)
		}
		t.switchAt(route[len(route)-1])
		return
	}

	// Leading segments are empty, so the distance lands on the first
	// non-empty one.
	at, seg := route.GetPointAtDistance(first * float64(percent) / 100)
	for _, p := range route[1 : seg+1] {
		t.paths.Completed.LineTo(p)
	}
	t.switchAt(at)
	for _, p := range route[seg+1:] {
		t.paths.Remaining.LineTo(p)
	}
}

func (t *Tracer) switchAt(p *geo.Point) {
	t.paths.Completed.LineTo(p)
	t.paths.Remaining.MoveTo(p)
	t.progress = p.Copy()
}

// Pen is the end of the last leg.
func (t *Tracer) Pen() *geo.Point {
	return t.pen.Copy()
}

func (t *Tracer) Paths() tltarget.Paths {
	return t.paths
}

// Progress is where the completed path meets the remaining path, or nil when
// every step is complete.
func (t *Tracer) Progress() *geo.Point {
	return t.progress.Copy()
}
