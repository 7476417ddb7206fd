package kml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dave/rutas/output"
)

const Namespace = "http://www.opengis.net/kml/2.2"

func Load(fpath string) (Root, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return Root{}, fmt.Errorf("reading kml %q: %w", fpath, err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(reader io.Reader) (Root, error) {
	var r Root
	if err := xml.NewDecoder(reader).Decode(&r); err != nil {
		return Root{}, fmt.Errorf("decoding kml: %w", err)
	}
	return r, nil
}

type Root struct {
	Xmlns    string   `xml:"xmlns,attr"`
	Document Document `xml:"Document"`
}

// Encode writes the document with the xml header. Identical roots encode to
// identical bytes.
func (r Root) Encode(w io.Writer) error {
	wrapper := struct {
		Root
		XMLName struct{} `xml:"kml"`
	}{Root: r}
	bw, err := xml.MarshalIndent(wrapper, "", "\t")
	if err != nil {
		return fmt.Errorf("marshaling kml: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := w.Write(bw); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// Save writes the document to fpath and returns the file size.
func (r Root) Save(fpath string) (int, error) {
	n, err := output.Write(fpath, r.Encode)
	if err != nil {
		return 0, fmt.Errorf("writing kml file %q: %w", fpath, err)
	}
	return n, nil
}

type Document struct {
	Name        string       `xml:"name"`
	Description string       `xml:"description"`
	Styles      []*Style     `xml:"Style"`
	Placemarks  []*Placemark `xml:"Placemark"`
}

type Style struct {
	Id        string     `xml:"id,attr,omitempty"`
	IconStyle *IconStyle `xml:"IconStyle,omitempty"`
	LineStyle *LineStyle `xml:"LineStyle,omitempty"`
}

type IconStyle struct {
	Icon  Icon    `xml:"Icon"`
	Scale float64 `xml:"scale"`
}

type Icon struct {
	Href string `xml:"href"`
}

type LineStyle struct {
	Color string  `xml:"color"`
	Width float64 `xml:"width,omitempty"`
}

type Placemark struct {
	Name        string      `xml:"name"`
	Description string      `xml:"description"`
	StyleUrl    string      `xml:"styleUrl,omitempty"`
	Point       *Point      `xml:"Point,omitempty"`
	LineString  *LineString `xml:"LineString,omitempty"`
}

type Point struct {
	Coordinates string `xml:"coordinates"`
}

type LineString struct {
	Tessellate  int    `xml:"tessellate"`
	Coordinates string `xml:"coordinates"`
}

// Coordinates joins lon,lat,alt tuples with spaces.
func Coordinates(tuples []string) string {
	var sb strings.Builder
	for i, t := range tuples {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(t)
	}
	return sb.String()
}
