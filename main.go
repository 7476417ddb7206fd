package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dave/rutas/globals"
	"github.com/dave/rutas/routedata"
	"github.com/tkrajina/go-elevations/geoelevations"
)

func main() {
	if err := Main(os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}

func Main(args []string) error {
	cfg, err := NewConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	if cfg.Version {
		fmt.Println(globals.VERSION)
		return nil
	}

	opts := routedata.Options{InferDistances: cfg.InferDistances}
	if cfg.Elevations {
		globals.SrtmClient, err = geoelevations.NewSrtm(http.DefaultClient)
		if err != nil {
			return fmt.Errorf("creating srtm client: %w", err)
		}
		opts.Elevations = globals.SrtmClient
	}

	data, err := routedata.Load(cfg.Input, opts)
	if err != nil {
		return fmt.Errorf("loading routes: %w", err)
	}

	if cfg.List {
		List(os.Stdout, data)
		return nil
	}

	if cfg.Serve != "" {
		return Serve(cfg.Serve, data)
	}

	if len(data.Keys) == 0 {
		return fmt.Errorf("no routes in %s", cfg.Input)
	}

	report, err := Generate(cfg, data)
	if err != nil {
		return fmt.Errorf("generating files: %w", err)
	}
	logf("\nKML files in %s\n", cfg.KMLDir)
	logf("SVG files in %s\n", cfg.SVGDir)
	return report.Err()
}
