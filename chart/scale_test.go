package chart

import (
	"errors"
	"testing"
)

func TestScaleEnds(t *testing.T) {
	profiles := []Profile{
		{{0, 200}, {500, 250}, {800, 180}},
		{{0, 10}, {1, 10}},
		{{0, -30}, {12345, 4000}, {12345, 3999}, {99999, 0}},
	}
	c := DefaultCanvas
	for _, p := range profiles {
		s, err := NewScale(c, p)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.X(0); got != c.Margin {
			t.Fatalf("%v: X(0) = %v, want %v", p, got, c.Margin)
		}
		if got := s.X(float64(s.MaxDistance)); got != c.Width-c.Margin {
			t.Fatalf("%v: X(max) = %v, want %v", p, got, c.Width-c.Margin)
		}
	}
}

func TestScaleAltitudeOrder(t *testing.T) {
	p := Profile{{0, 200}, {500, 250}, {800, 180}, {900, 230}}
	s, err := NewScale(DefaultCanvas, p)
	if err != nil {
		t.Fatal(err)
	}
	var top, bottom Point
	for i, sample := range p {
		pt := s.Project(sample)
		if i == 0 || pt.Y < top.Y {
			top = pt
		}
		if i == 0 || pt.Y > bottom.Y {
			bottom = pt
		}
	}
	if want := s.Project(p[1]); top != want {
		t.Fatalf("highest point projects to %v, want %v", top, want)
	}
	if want := s.Project(p[2]); bottom != want {
		t.Fatalf("lowest point projects to %v, want %v", bottom, want)
	}
	if top.Y != DefaultCanvas.Margin {
		t.Fatalf("max altitude y = %v, want top of plot area", top.Y)
	}
	if bottom.Y != DefaultCanvas.Baseline() {
		t.Fatalf("min altitude y = %v, want baseline", bottom.Y)
	}
}

func TestScaleFlatProfile(t *testing.T) {
	s, err := NewScale(DefaultCanvas, Profile{{0, 300}, {400, 300}, {900, 300}})
	if err != nil {
		t.Fatal(err)
	}
	if s.AltitudeSpan != FallbackSpan {
		t.Fatalf("AltitudeSpan = %v, want %v", s.AltitudeSpan, FallbackSpan)
	}
	if got := s.Y(300); got != DefaultCanvas.Baseline() {
		t.Fatalf("Y(300) = %v, want baseline", got)
	}
}

func TestScaleZeroDistance(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
	}{
		{"single point", Profile{{0, 120}}},
		{"landmarks at the start", Profile{{0, 120}, {0, 180}, {0, 150}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScale(DefaultCanvas, tt.p)
			if err != nil {
				t.Fatal(err)
			}
			if s.DistanceSpan != FallbackSpan {
				t.Fatalf("DistanceSpan = %v, want %v", s.DistanceSpan, FallbackSpan)
			}
			for _, sample := range tt.p {
				if x := s.Project(sample).X; x != DefaultCanvas.Margin {
					t.Fatalf("x = %v, want %v", x, DefaultCanvas.Margin)
				}
			}
		})
	}
}

func TestScaleErrors(t *testing.T) {
	if _, err := NewScale(DefaultCanvas, nil); !errors.Is(err, ErrEmptyProfile) {
		t.Fatalf("expected ErrEmptyProfile, got %v", err)
	}
	if _, err := NewScale(Canvas{Width: 100, Height: 100, Margin: 50}, Profile{{0, 1}}); err == nil {
		t.Fatal("expected error for a canvas without plot area")
	}
}

func TestProfileRange(t *testing.T) {
	p := Profile{{0, 200}, {500, 250}, {800, 180}}
	if got := p.MaxDistance(); got != 800 {
		t.Fatalf("MaxDistance() = %d", got)
	}
	min, max := p.AltitudeRange()
	if min != 180 || max != 250 {
		t.Fatalf("AltitudeRange() = %d, %d", min, max)
	}
}
