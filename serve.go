package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/dave/rutas/chart"
	"github.com/dave/rutas/globals"
	"github.com/dave/rutas/routedata"
	"github.com/gin-gonic/gin"
)

// Serve renders the files on request instead of writing them to disk.
func Serve(addr string, data *routedata.Data) error {
	gin.SetMode(gin.ReleaseMode)
	logf("Serving %d routes on %s\n", len(data.Routes), addr)
	return newRouter(data).Run(addr)
}

type routeSummary struct {
	ID         string `json:"id"`
	Name       string `json:"nombre"`
	StartPlace string `json:"lugarInicio"`
	Distance   int    `json:"distancia"`
	Landmarks  int    `json:"hitos"`
}

func newRouter(data *routedata.Data) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if globals.LOG {
		r.Use(gin.Logger())
	}

	api := r.Group("/rutas")
	{
		api.GET("", func(c *gin.Context) {
			summaries := []routeSummary{}
			for _, id := range data.Keys {
				route, err := data.Route(id)
				if err != nil {
					continue
				}
				summaries = append(summaries, routeSummary{
					ID:         route.ID,
					Name:       route.Name,
					StartPlace: route.StartPlace,
					Distance:   route.Profile().MaxDistance(),
					Landmarks:  len(route.Landmarks),
				})
			}
			c.JSON(http.StatusOK, summaries)
		})
		api.GET("/:id/kml", render(data, "application/vnd.google-earth.kml+xml", func(route *routedata.Route, w io.Writer) error {
			return route.Overlay().Encode(w)
		}))
		api.GET("/:id/svg", render(data, "image/svg+xml", func(route *routedata.Route, w io.Writer) error {
			return drawChart(route, w, (*chart.Layout).WriteSVG)
		}))
		api.GET("/:id/png", render(data, "image/png", func(route *routedata.Route, w io.Writer) error {
			return drawChart(route, w, (*chart.Layout).WritePNG)
		}))
	}
	return r
}

func drawChart(route *routedata.Route, w io.Writer, write func(*chart.Layout, io.Writer) error) error {
	layout, err := chart.NewLayout(chart.DefaultCanvas, route.Name, route.Profile())
	if err != nil {
		return err
	}
	return write(layout, w)
}

func render(data *routedata.Data, contentType string, fn func(*routedata.Route, io.Writer) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		route, err := data.Route(c.Param("id"))
		switch {
		case errors.Is(err, routedata.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		var buf bytes.Buffer
		if err := fn(route, &buf); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, chart.ErrEmptyProfile) {
				status = http.StatusUnprocessableEntity
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, contentType, buf.Bytes())
	}
}
