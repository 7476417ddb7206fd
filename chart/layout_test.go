package chart

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"
)

var example = Profile{{0, 200}, {500, 250}, {800, 180}}

func TestLayoutExample(t *testing.T) {
	l, err := NewLayout(DefaultCanvas, "Ruta de prueba", example)
	if err != nil {
		t.Fatal(err)
	}
	want := "Distancia total: 800m | Altitud mín: 180m | Altitud máx: 250m | Desnivel: 70m"
	if got := l.Stats.String(); got != want {
		t.Fatalf("footer = %q, want %q", got, want)
	}
	if len(l.AltitudeGrid) != Divisions+1 || len(l.DistanceGrid) != Divisions+1 {
		t.Fatalf("got %d altitude and %d distance gridlines", len(l.AltitudeGrid), len(l.DistanceGrid))
	}

	var altitudeLabels, distanceLabels []string
	for _, g := range l.AltitudeGrid {
		altitudeLabels = append(altitudeLabels, g.Label)
		if g.From.Y != g.To.Y {
			t.Fatalf("altitude gridline %v is not horizontal", g)
		}
	}
	for _, g := range l.DistanceGrid {
		distanceLabels = append(distanceLabels, g.Label)
		if g.From.X != g.To.X {
			t.Fatalf("distance gridline %v is not vertical", g)
		}
	}
	if got := strings.Join(altitudeLabels, " "); got != "180m 194m 208m 222m 236m 250m" {
		t.Fatalf("altitude labels = %s", got)
	}
	if got := strings.Join(distanceLabels, " "); got != "0m 160m 320m 480m 640m 800m" {
		t.Fatalf("distance labels = %s", got)
	}

	if len(l.Line) != 3 || len(l.Area) != 5 {
		t.Fatalf("got %d line points and %d area points", len(l.Line), len(l.Area))
	}
	base := DefaultCanvas.Baseline()
	if first, last := l.Area[0], l.Area[len(l.Area)-1]; first != (Point{50, base}) || last != (Point{750, base}) {
		t.Fatalf("area not closed at the baseline: %v ... %v", first, last)
	}

	labels := []string{"0", "H1", "H2"}
	for i, m := range l.Markers {
		if m.Label != labels[i] {
			t.Fatalf("marker %d label = %q, want %q", i, m.Label, labels[i])
		}
		color := LandmarkColor
		if i == 0 {
			color = StartColor
		}
		if m.Color != color {
			t.Fatalf("marker %d color = %q, want %q", i, m.Color, color)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	if _, err := NewLayout(DefaultCanvas, "vacía", Profile{}); !errors.Is(err, ErrEmptyProfile) {
		t.Fatalf("expected ErrEmptyProfile, got %v", err)
	}
}

func TestWriteSVG(t *testing.T) {
	l, err := NewLayout(DefaultCanvas, "Ruta <1> & más", example)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := l.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`width="800.00" height="400.00"`,
		`xmlns="http://www.w3.org/2000/svg"`,
		"Perfil Altimétrico: Ruta &lt;1&gt; &amp; más",
		"Distancia total: 800m | Altitud mín: 180m | Altitud máx: 250m | Desnivel: 70m",
		`<polyline points="50.00,264.29 487.50,50.00 750.00,350.00"`,
		`<polygon points="50.00,350.00 50.00,264.29 487.50,50.00 750.00,350.00 750.00,350.00"`,
		"Distancia (metros)",
		"Altitud (metros)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg does not contain %q", want)
		}
	}
	if n := strings.Count(out, "<line "); n != 2*(Divisions+1) {
		t.Fatalf("svg has %d gridlines, want %d", n, 2*(Divisions+1))
	}
	if n := strings.Count(out, "<circle "); n != 3 {
		t.Fatalf("svg has %d markers, want 3", n)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Fatal("svg is not terminated")
	}
}

func TestWriteSVGFlat(t *testing.T) {
	l, err := NewLayout(DefaultCanvas, "llana", Profile{{0, 500}, {300, 500}, {700, 500}})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := l.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	altitudes := section(t, buf.String(), `<g id="altitudes"`)
	if n := strings.Count(altitudes, "<line "); n != 6 {
		t.Fatalf("flat profile has %d horizontal gridlines, want 6", n)
	}
	if !strings.Contains(altitudes, ">600m</text>") {
		t.Fatal("top gridline should use the fallback span")
	}
}

func TestWriteSVGDeterministic(t *testing.T) {
	render := func() []byte {
		l, err := NewLayout(DefaultCanvas, "Ruta", example)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := l.WriteSVG(&buf); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	if !bytes.Equal(render(), render()) {
		t.Fatal("rendering twice gave different output")
	}
}

func TestWritePNG(t *testing.T) {
	l, err := NewLayout(DefaultCanvas, "Ruta", example)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := l.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 400 {
		t.Fatalf("png is %dx%d", b.Dx(), b.Dy())
	}
}

// section returns the svg group starting with prefix.
func section(t *testing.T, s, prefix string) string {
	t.Helper()
	i := strings.Index(s, prefix)
	if i < 0 {
		t.Fatalf("no %s in svg", prefix)
	}
	s = s[i:]
	return s[:strings.Index(s, "</g>")]
}
