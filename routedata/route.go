package routedata

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dave/rutas/chart"
	"github.com/dave/rutas/geo"
)

// ErrNotFound is returned when a route id is not in the document.
var ErrNotFound = errors.New("route not found")

// Data is the parsed route document. Keys holds the route ids in document order.
type Data struct {
	Keys    []string
	Routes  map[string]*Route
	Invalid map[string]error // routes that could not be loaded, by id
}

// Route returns the route with the given id.
func (d *Data) Route(id string) (*Route, error) {
	if r, ok := d.Routes[id]; ok {
		return r, nil
	}
	if err, ok := d.Invalid[id]; ok {
		return nil, err
	}
	return nil, fmt.Errorf("route %q: %w", id, ErrNotFound)
}

// Route is one touring itinerary
type Route struct {
	ID              string
	Name            string
	Description     string
	Type            string // tipo
	Transport       string // transporte
	Duration        string // duracion
	StartPlace      string // lugarInicio
	Start           Coordinates
	References      []string
	Recommendations []string
	Landmarks       []*Landmark // valid landmarks in document order
	Warnings        []string    // skipped or incomplete records
}

func (r *Route) String() string {
	return fmt.Sprintf("%s (%s)", r.ID, r.Name)
}

// Line is the start point followed by every landmark.
func (r *Route) Line() geo.Line {
	line := geo.Line{r.Start.Pos}
	for _, l := range r.Landmarks {
		line = append(line, l.Pos)
	}
	return line
}

// Profile is the cumulative distance / altitude sequence of the route. Landmarks
// without a distance are not part of it.
func (r *Route) Profile() chart.Profile {
	profile := chart.Profile{{Distance: 0, Altitude: r.Start.Altitude()}}
	var total int
	for _, l := range r.Landmarks {
		if !l.HasDistance {
			continue
		}
		total += l.Distance
		profile = append(profile, chart.Sample{Distance: total, Altitude: l.Altitude()})
	}
	return profile
}

// Landmark is a named waypoint (hito) along a route.
type Landmark struct {
	Index       int // 1-based position in the source document, counting skipped landmarks
	Name        string
	Description string
	Coordinates
	Distance    int  // meters from the previous point
	HasDistance bool // false when the document gives no usable distance
}

// Title is the placemark name, e.g. "Hito 2: Mirador".
func (l *Landmark) Title() string {
	return fmt.Sprintf("Hito %d: %s", l.Index, l.Name)
}

// Coordinates keeps the source text of each component so the overlay can pass
// it through verbatim.
type Coordinates struct {
	Lon, Lat, Alt string
	Pos           geo.Pos
}

// Altitude in whole meters.
func (c Coordinates) Altitude() int {
	return int(c.Pos.Ele)
}

// Tuple is the lon,lat,alt text used in kml coordinates.
func (c Coordinates) Tuple() string {
	return c.Lon + "," + c.Lat + "," + c.Alt
}

func parseCoordinates(lon, lat, alt string) (Coordinates, error) {
	c := Coordinates{Lon: lon, Lat: lat, Alt: alt}
	var err error
	if c.Pos.Lon, err = strconv.ParseFloat(lon, 64); err != nil {
		return Coordinates{}, fmt.Errorf("parsing longitude %q: %w", lon, err)
	}
	if c.Pos.Lat, err = strconv.ParseFloat(lat, 64); err != nil {
		return Coordinates{}, fmt.Errorf("parsing latitude %q: %w", lat, err)
	}
	if alt == "" {
		return c, errNoAltitude
	}
	if c.Pos.Ele, err = parseMeters(alt); err != nil {
		return Coordinates{}, fmt.Errorf("parsing altitude %q: %w", alt, err)
	}
	return c, nil
}

var errNoAltitude = errors.New("no altitude")

// parseMeters accepts integers and truncates decimals ("250", "250.7").
func parseMeters(s string) (float64, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return float64(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return float64(int(f)), nil
}
