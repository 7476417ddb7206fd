package routedata

import (
	"fmt"

	"github.com/dave/rutas/kml"
)

const (
	StartStyle    = "inicio"
	LandmarkStyle = "hito"
	PathStyle     = "ruta"

	NoDescription = "Sin descripción disponible"
)

func overlayStyles() []*kml.Style {
	return []*kml.Style{
		{
			Id: StartStyle,
			IconStyle: &kml.IconStyle{
				Icon:  kml.Icon{Href: "http://maps.google.com/mapfiles/kml/paddle/grn-circle.png"},
				Scale: 1.2,
			},
		},
		{
			Id: LandmarkStyle,
			IconStyle: &kml.IconStyle{
				Icon:  kml.Icon{Href: "http://maps.google.com/mapfiles/kml/paddle/blu-circle.png"},
				Scale: 1.0,
			},
		},
		{
			Id: PathStyle,
			LineStyle: &kml.LineStyle{
				Color: "ff0000ff",
				Width: 3,
			},
		},
	}
}

// Overlay builds the kml document for the route: the start point, one
// placemark per landmark and the path through all of them.
func (r *Route) Overlay() kml.Root {
	doc := kml.Document{
		Name:        r.Name,
		Description: r.Description,
		Styles:      overlayStyles(),
	}

	doc.Placemarks = append(doc.Placemarks, &kml.Placemark{
		Name:        fmt.Sprintf("Inicio: %s", r.StartPlace),
		Description: "Punto de inicio de la ruta",
		StyleUrl:    "#" + StartStyle,
		Point:       &kml.Point{Coordinates: r.Start.Tuple()},
	})

	path := []string{r.Start.Tuple()}
	for _, l := range r.Landmarks {
		doc.Placemarks = append(doc.Placemarks, &kml.Placemark{
			Name:        l.Title(),
			Description: l.Description,
			StyleUrl:    "#" + LandmarkStyle,
			Point:       &kml.Point{Coordinates: l.Tuple()},
		})
		path = append(path, l.Tuple())
	}

	doc.Placemarks = append(doc.Placemarks, &kml.Placemark{
		Name:        fmt.Sprintf("Recorrido %s", r.Name),
		Description: fmt.Sprintf("Trazado completo de la ruta (%.1f km en línea recta entre hitos)", r.Line().Length()),
		StyleUrl:    "#" + PathStyle,
		LineString: &kml.LineString{
			Tessellate:  1,
			Coordinates: kml.Coordinates(path),
		},
	})

	return kml.Root{
		Xmlns:    kml.Namespace,
		Document: doc,
	}
}
