package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dave/rutas/chart"
	"github.com/dave/rutas/output"
	"github.com/dave/rutas/routedata"
	"github.com/dustin/go-humanize"
)

// Result is the outcome of generating the files of one route.
type Result struct {
	ID    string
	Files []string
	Err   error
}

type Report struct {
	Results []Result
}

func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err is non-nil when any route failed.
func (r Report) Err() error {
	if failed := r.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d routes failed", len(failed), len(r.Results))
	}
	return nil
}

// Generate writes the kml and svg files of every route, or only cfg.Route when
// set. A failing route is reported and the rest still run.
func Generate(cfg *Config, data *routedata.Data) (Report, error) {
	if err := os.MkdirAll(cfg.KMLDir, 0777); err != nil {
		return Report{}, fmt.Errorf("creating kml dir: %w", err)
	}
	if err := os.MkdirAll(cfg.SVGDir, 0777); err != nil {
		return Report{}, fmt.Errorf("creating svg dir: %w", err)
	}

	ids := data.Keys
	if cfg.Route != "" {
		ids = []string{cfg.Route}
	}
	logf("Generating files for %d routes\n", len(ids))

	var report Report
	for _, id := range ids {
		files, err := generateRoute(cfg, data, id)
		if err != nil {
			logf("Error: %v\n", err)
		}
		report.Results = append(report.Results, Result{ID: id, Files: files, Err: err})
	}
	return report, nil
}

type chartFile struct {
	fpath string
	write func(io.Writer) error
}

func generateRoute(cfg *Config, data *routedata.Data, id string) ([]string, error) {
	route, err := data.Route(id)
	if err != nil {
		return nil, err
	}
	// the chart is laid out before anything is written, so a route that cannot
	// be drawn leaves no files behind
	layout, err := chart.NewLayout(chart.DefaultCanvas, route.Name, route.Profile())
	if err != nil {
		return nil, fmt.Errorf("laying out chart of route %s: %w", id, err)
	}

	var files []string
	kmlPath := cfg.KMLPath(id)
	n, err := route.Overlay().Save(kmlPath)
	if err != nil {
		return files, fmt.Errorf("route %s: %w", id, err)
	}
	files = append(files, kmlPath)
	logf("KML file written: %s (%s)\n", kmlPath, humanize.Bytes(uint64(n)))

	charts := []chartFile{{cfg.SVGPath(id), layout.WriteSVG}}
	if cfg.PNG {
		charts = append(charts, chartFile{cfg.PNGPath(id), layout.WritePNG})
	}
	for _, w := range charts {
		n, err := output.Write(w.fpath, w.write)
		if err != nil {
			return files, fmt.Errorf("writing chart of route %s: %w", id, err)
		}
		files = append(files, w.fpath)
		logf("Chart written: %s (%s)\n", w.fpath, humanize.Bytes(uint64(n)))
	}
	debugf("route %s: %d samples, %s\n", id, len(layout.Line), layout.Stats)
	return files, nil
}
