package chart

import (
	"fmt"
)

const (
	PlotColor     = "#f8f9fa"
	GridColor     = "#dee2e6"
	LineColor     = "#007bff"
	AreaColor     = "rgba(0, 123, 255, 0.3)"
	StartColor    = "#28a745"
	LandmarkColor = "#dc3545"
)

type Point struct {
	X, Y float64
}

// GridLine is a gridline with its axis label.
type GridLine struct {
	From, To Point
	Label    string
	LabelAt  Point
}

// Marker highlights one profile sample.
type Marker struct {
	Point
	Label string
	Color string
}

// Stats is the footer line of the chart.
type Stats struct {
	Distance    int
	MinAltitude int
	MaxAltitude int
	Gain        int // MaxAltitude - MinAltitude
}

func (s Stats) String() string {
	return fmt.Sprintf("Distancia total: %dm | Altitud mín: %dm | Altitud máx: %dm | Desnivel: %dm",
		s.Distance, s.MinAltitude, s.MaxAltitude, s.Gain)
}

// Layout is a profile projected onto a canvas, ready to be drawn.
type Layout struct {
	Scale
	Name         string
	AltitudeGrid []GridLine // bottom to top, Divisions+1 lines
	DistanceGrid []GridLine // left to right, Divisions+1 lines
	Line         []Point    // profile samples in order
	Area         []Point    // Line closed at the baseline on both ends
	Markers      []Marker
	Stats        Stats
}

func (l *Layout) Title() string {
	return "Perfil Altimétrico: " + l.Name
}

// NewLayout projects the profile of the named route onto the canvas.
func NewLayout(c Canvas, name string, p Profile) (*Layout, error) {
	s, err := NewScale(c, p)
	if err != nil {
		return nil, err
	}
	l := &Layout{
		Scale: s,
		Name:  name,
		Stats: Stats{
			Distance:    s.MaxDistance,
			MinAltitude: s.MinAltitude,
			MaxAltitude: s.MaxAltitude,
			Gain:        s.MaxAltitude - s.MinAltitude,
		},
	}

	for i := 0; i <= Divisions; i++ {
		altitude := float64(s.MinAltitude) + s.AltitudeSpan*float64(i)/Divisions
		y := s.Y(altitude)
		l.AltitudeGrid = append(l.AltitudeGrid, GridLine{
			From:    Point{X: s.Margin, Y: y},
			To:      Point{X: s.Margin + s.PlotWidth(), Y: y},
			Label:   fmt.Sprintf("%dm", int(altitude)),
			LabelAt: Point{X: s.Margin - 5, Y: y + 4},
		})
	}
	for i := 0; i <= Divisions; i++ {
		distance := s.DistanceSpan * float64(i) / Divisions
		x := s.X(distance)
		l.DistanceGrid = append(l.DistanceGrid, GridLine{
			From:    Point{X: x, Y: s.Margin},
			To:      Point{X: x, Y: s.Baseline()},
			Label:   fmt.Sprintf("%dm", int(distance)),
			LabelAt: Point{X: x, Y: s.Baseline() + 15},
		})
	}

	for i, sample := range p {
		pt := s.Project(sample)
		l.Line = append(l.Line, pt)
		m := Marker{Point: pt, Label: fmt.Sprintf("H%d", i), Color: LandmarkColor}
		if i == 0 {
			m.Label, m.Color = "0", StartColor
		}
		l.Markers = append(l.Markers, m)
	}

	l.Area = make([]Point, 0, len(l.Line)+2)
	l.Area = append(l.Area, Point{X: l.Line[0].X, Y: s.Baseline()})
	l.Area = append(l.Area, l.Line...)
	l.Area = append(l.Area, Point{X: l.Line[len(l.Line)-1].X, Y: s.Baseline()})

	return l, nil
}

func split(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
