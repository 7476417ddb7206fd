package kml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	root := Root{
		Xmlns: Namespace,
		Document: Document{
			Name: "Ruta",
			Styles: []*Style{
				{Id: "ruta", LineStyle: &LineStyle{Color: "ff0000ff", Width: 3}},
			},
			Placemarks: []*Placemark{
				{Name: "Inicio", StyleUrl: "#ruta", Point: &Point{Coordinates: "-5.66,43.39,200"}},
				{Name: "Recorrido", LineString: &LineString{Tessellate: 1, Coordinates: Coordinates([]string{"1,2,3", "4,5,6"})}},
			},
		},
	}
	fpath := filepath.Join(t.TempDir(), "ruta.kml")
	n, err := root.Save(fpath)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(b) {
		t.Fatalf("Save reported %d bytes, file has %d", n, len(b))
	}
	for _, want := range []string{
		`<kml xmlns="http://www.opengis.net/kml/2.2">`,
		`<Style id="ruta">`,
		`<coordinates>1,2,3 4,5,6</coordinates>`,
		`<tessellate>1</tessellate>`,
	} {
		if !strings.Contains(string(b), want) {
			t.Errorf("kml does not contain %q", want)
		}
	}
	if strings.Contains(string(b), "IconStyle") {
		t.Error("empty IconStyle should be omitted")
	}

	loaded, err := Load(fpath)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Document.Placemarks) != 2 || loaded.Document.Placemarks[0].Point.Coordinates != "-5.66,43.39,200" {
		t.Fatalf("unexpected document %+v", loaded.Document)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.kml")); err == nil {
		t.Fatal("expected error")
	}
}
