// Package chart projects an elevation profile onto a fixed size canvas and
// writes it as an SVG document or a PNG image.
package chart

import (
	"errors"
	"fmt"
)

// FallbackSpan replaces a zero altitude or distance span so the scales stay
// defined. It is in meters, like the samples.
const FallbackSpan = 100

// Divisions is the number of equal grid intervals on each axis.
const Divisions = 5

// ErrEmptyProfile is returned when there is nothing to project.
var ErrEmptyProfile = errors.New("empty elevation profile")

// Sample is one point of the profile: meters from the start and altitude in meters.
type Sample struct {
	Distance int
	Altitude int
}

// Profile is ordered by cumulative distance.
type Profile []Sample

func (p Profile) MaxDistance() int {
	var max int
	for _, s := range p {
		if s.Distance > max {
			max = s.Distance
		}
	}
	return max
}

// AltitudeRange returns the lowest and highest altitude. The profile must not be empty.
func (p Profile) AltitudeRange() (min, max int) {
	min, max = p[0].Altitude, p[0].Altitude
	for _, s := range p[1:] {
		if s.Altitude < min {
			min = s.Altitude
		}
		if s.Altitude > max {
			max = s.Altitude
		}
	}
	return min, max
}

// Canvas is the image size in pixels with a uniform margin around the plot area.
type Canvas struct {
	Width, Height, Margin float64
}

var DefaultCanvas = Canvas{Width: 800, Height: 400, Margin: 50}

func (c Canvas) PlotWidth() float64  { return c.Width - 2*c.Margin }
func (c Canvas) PlotHeight() float64 { return c.Height - 2*c.Margin }

// Baseline is the y of the bottom edge of the plot area.
func (c Canvas) Baseline() float64 { return c.Margin + c.PlotHeight() }

func (c Canvas) validate() error {
	if c.Margin < 0 || c.PlotWidth() <= 0 || c.PlotHeight() <= 0 {
		return fmt.Errorf("canvas %vx%v with margin %v has no plot area", c.Width, c.Height, c.Margin)
	}
	return nil
}

// Scale maps profile samples to canvas coordinates. Higher altitudes get
// smaller y values.
type Scale struct {
	Canvas
	MaxDistance              int
	MinAltitude, MaxAltitude int
	DistanceSpan             float64 // MaxDistance, or FallbackSpan when zero
	AltitudeSpan             float64 // MaxAltitude-MinAltitude, or FallbackSpan when zero
}

func NewScale(c Canvas, p Profile) (Scale, error) {
	if len(p) == 0 {
		return Scale{}, ErrEmptyProfile
	}
	if err := c.validate(); err != nil {
		return Scale{}, err
	}
	s := Scale{Canvas: c, MaxDistance: p.MaxDistance()}
	s.MinAltitude, s.MaxAltitude = p.AltitudeRange()

	s.DistanceSpan = float64(s.MaxDistance)
	if s.MaxDistance == 0 {
		s.DistanceSpan = FallbackSpan
	}
	s.AltitudeSpan = float64(s.MaxAltitude - s.MinAltitude)
	if s.MaxAltitude == s.MinAltitude {
		s.AltitudeSpan = FallbackSpan
	}
	return s, nil
}

func (s Scale) X(distance float64) float64 {
	return s.Margin + distance*s.PlotWidth()/s.DistanceSpan
}

func (s Scale) Y(altitude float64) float64 {
	return s.Margin + s.PlotHeight() - (altitude-float64(s.MinAltitude))*s.PlotHeight()/s.AltitudeSpan
}

// Project returns the canvas position of a sample.
func (s Scale) Project(sample Sample) Point {
	return Point{X: s.X(float64(sample.Distance)), Y: s.Y(float64(sample.Altitude))}
}
