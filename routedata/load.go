package routedata

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Elevations looks up the ground elevation of a location. *geoelevations.Srtm
// satisfies it.
type Elevations interface {
	GetElevation(client *http.Client, lat, lon float64) (float64, error)
}

type Options struct {
	Elevations     Elevations // fills missing altitudes; when nil such records are skipped
	InferDistances bool       // use the great-circle distance when a landmark has none
}

// Load reads the route document at fpath.
func Load(fpath string, opts Options) (*Data, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("opening route document %q: %w", fpath, err)
	}
	defer f.Close()
	d, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", fpath, err)
	}
	return d, nil
}

// Decode parses a route document. Routes that cannot be loaded are recorded in
// Data.Invalid, incomplete landmarks are skipped with a warning.
func Decode(reader io.Reader, opts Options) (*Data, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("parsing route document: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("route document is empty")
	}

	d := &Data{
		Routes:  map[string]*Route{},
		Invalid: map[string]error{},
	}
	seen := map[string]bool{}
	for i, el := range root.SelectElements("ruta") {
		id := strings.TrimSpace(el.SelectAttrValue("id", ""))
		if id == "" {
			logf("warning: route %d has no id, skipping\n", i+1)
			continue
		}
		if seen[id] {
			logf("warning: duplicate route id %q, keeping the first one\n", id)
			continue
		}
		seen[id] = true
		d.Keys = append(d.Keys, id)

		route, err := loadRoute(id, el, opts)
		if err != nil {
			logf("error: route %q: %v\n", id, err)
			d.Invalid[id] = fmt.Errorf("loading route %q: %w", id, err)
			continue
		}
		debugf("loaded route %s with %d landmarks\n", route, len(route.Landmarks))
		d.Routes[id] = route
	}
	return d, nil
}

func loadRoute(id string, el *etree.Element, opts Options) (*Route, error) {
	r := &Route{ID: id}
	r.Name, _ = text(el, "nombre")
	if r.Name == "" {
		r.Name = id
	}
	r.Description = description(el)
	r.Type, _ = text(el, "tipo")
	r.Transport, _ = text(el, "transporte")
	r.Duration, _ = text(el, "duracion")
	r.StartPlace, _ = text(el, "lugarInicio")

	start := el.SelectElement("coordenadasInicio")
	if start == nil {
		return nil, errors.New("no start coordinates")
	}
	var err error
	if r.Start, err = readCoordinates(start, opts); err != nil {
		return nil, fmt.Errorf("start coordinates: %w", err)
	}

	for _, e := range el.FindElements("referencias/referencia") {
		if s := strings.TrimSpace(e.Text()); s != "" {
			r.References = append(r.References, s)
		}
	}
	for _, e := range el.FindElements("recomendaciones/recomendacion") {
		if s := strings.TrimSpace(e.Text()); s != "" {
			r.Recommendations = append(r.Recommendations, s)
		}
	}

	prev := r.Start.Pos
	for i, h := range el.FindElements("hitos/hito") {
		index := i + 1
		l, err := loadLandmark(index, h, opts)
		if err != nil {
			r.warnf("landmark %d: %v, skipping", index, err)
			continue
		}
		if !l.HasDistance {
			if opts.InferDistances {
				l.Distance = prev.Meters(l.Pos)
				l.HasDistance = true
				debugf("route %s: landmark %d distance inferred as %dm\n", r.ID, index, l.Distance)
			} else {
				r.warnf("landmark %d: no distance, left out of the elevation profile", index)
			}
		}
		prev = l.Pos
		r.Landmarks = append(r.Landmarks, l)
	}
	return r, nil
}

func loadLandmark(index int, el *etree.Element, opts Options) (*Landmark, error) {
	name, ok := text(el, "nombre")
	if !ok {
		return nil, errors.New("no name")
	}
	coordinates := el.SelectElement("coordenadas")
	if coordinates == nil {
		return nil, errors.New("no coordinates")
	}
	c, err := readCoordinates(coordinates, opts)
	if err != nil {
		return nil, err
	}

	l := &Landmark{
		Index:       index,
		Name:        name,
		Coordinates: c,
	}
	if l.Name == "" {
		l.Name = fmt.Sprintf("Hito %d", index)
	}
	l.Description = description(el)
	if l.Description == "" {
		l.Description = NoDescription
	}
	if s, ok := text(el, "distancia"); ok {
		if meters, err := parseMeters(s); err == nil && meters >= 0 {
			l.Distance = int(meters)
			l.HasDistance = true
		}
	}
	return l, nil
}

// readCoordinates reads longitud / latitud / altitud children. A missing
// altitude is looked up when opts.Elevations is set.
func readCoordinates(el *etree.Element, opts Options) (Coordinates, error) {
	lon, _ := text(el, "longitud")
	lat, _ := text(el, "latitud")
	alt, _ := text(el, "altitud")
	c, err := parseCoordinates(lon, lat, alt)
	if !errors.Is(err, errNoAltitude) {
		return c, err
	}
	if opts.Elevations == nil {
		return Coordinates{}, errors.New("no altitude")
	}
	ele, err := opts.Elevations.GetElevation(http.DefaultClient, c.Pos.Lat, c.Pos.Lon)
	if err != nil {
		return Coordinates{}, fmt.Errorf("looking up elevation at %v,%v: %w", c.Pos.Lat, c.Pos.Lon, err)
	}
	c.Pos.Ele = float64(int(ele))
	c.Alt = strconv.Itoa(int(ele))
	debugf("elevation at %s,%s looked up: %sm\n", c.Lon, c.Lat, c.Alt)
	return c, nil
}

// description is the plain text of the descripcion child, including text
// inside inline markup.
func description(el *etree.Element) string {
	e := el.SelectElement("descripcion")
	if e == nil {
		return ""
	}
	return plainText(innerText(e))
}

func innerText(e *etree.Element) string {
	var sb strings.Builder
	for _, t := range e.Child {
		switch t := t.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			sb.WriteString(innerText(t))
		}
	}
	return sb.String()
}

// text returns the trimmed text of the child at path, and whether the child exists.
func text(el *etree.Element, path string) (string, bool) {
	e := el.FindElement(path)
	if e == nil {
		return "", false
	}
	return strings.TrimSpace(e.Text()), true
}

func (r *Route) warnf(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	r.Warnings = append(r.Warnings, msg)
	logf("warning: route %s: %s\n", r.ID, msg)
}
