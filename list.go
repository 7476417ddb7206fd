package main

import (
	"fmt"
	"io"

	"github.com/dave/rutas/routedata"
	"github.com/dustin/go-humanize"
)

// List prints the routes of the document in order.
func List(w io.Writer, data *routedata.Data) {
	fmt.Fprintln(w, "Rutas disponibles:")
	for _, id := range data.Keys {
		route, err := data.Route(id)
		if err != nil {
			fmt.Fprintf(w, "  %s: %v\n", id, err)
			continue
		}
		fmt.Fprintf(w, "  %s: %s (%s m, %d hitos)\n", id, route.Name,
			humanize.Comma(int64(route.Profile().MaxDistance())), len(route.Landmarks))
	}
}
