package geo

import (
	"testing"
)

func TestPointDistanceTo(t *testing.T) {
	p1 := &Point{0, 0}
	p2 := &Point{30, 40}

	if d := p1.DistanceTo(p2); d != 50.0 {
		t.Fatalf("Expected 50.0 and got %v", d)
	}
}

func TestTowards(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{100, 0}

	p := a.Towards(b, 25)
	if !p.Equals(NewPoint(25, 0)) {
		t.Fatalf("Expected (25, 0), got %v", p.ToString())
	}

	p = a.Towards(b, 500)
	if !p.Equals(b) {
		t.Fatalf("Expected Towards to clamp at %v, got %v", b.ToString(), p.ToString())
	}

	p = a.Towards(a, 10)
	if !p.Equals(a) {
		t.Fatalf("Expected a degenerate direction to return the origin, got %v", p.ToString())
	}
}

func TestBoxContains(t *testing.T) {
	b := NewCenteredBox(NewPoint(10, 10), 20)
	if !b.Contains(NewPoint(10, 10)) {
		t.Fatal("Expected center to be inside")
	}
	if !b.Contains(NewPoint(20, 0)) {
		t.Fatal("Expected corner to be inside")
	}
	if b.Contains(NewPoint(20.01, 10)) {
		t.Fatal("Expected point past the right edge to be outside")
	}
}
