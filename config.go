package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/rutas/globals"
	"github.com/peterbourgon/ff/v3"
)

// DefaultInput is used when no input document is given or the given one does not exist.
const DefaultInput = "rutas.xml"

// Config holds the resolved paths and switches for one run.
type Config struct {
	Input          string // route document
	KMLDir         string // geo-overlay output dir
	SVGDir         string // elevation chart output dir
	Route          string // only render this route id
	PNG            bool   // also rasterize the charts
	Elevations     bool   // look up missing altitudes
	InferDistances bool   // great-circle distance for landmarks without one
	List           bool
	Serve          string // listen address for the http mode
	Version        bool
}

// NewConfig parses the command line. Every flag may also be set with a RUTAS_
// environment variable, e.g. RUTAS_KML=/tmp/kml.
func NewConfig(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("rutas", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: rutas [flags] [route document]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.KMLDir, "kml", "", "kml output dir (default: kml/ next to the route document)")
	fs.StringVar(&cfg.SVGDir, "svg", "", "svg output dir (default: svg/ next to the route document)")
	fs.StringVar(&cfg.Route, "route", "", "only generate the route with this id")
	fs.BoolVar(&cfg.PNG, "png", false, "also write a png of each elevation chart")
	fs.BoolVar(&cfg.Elevations, "ele", false, "lookup missing altitudes")
	fs.BoolVar(&cfg.InferDistances, "infer", false, "use the straight line distance for landmarks without one")
	fs.BoolVar(&cfg.List, "list", false, "list the routes and exit")
	fs.StringVar(&cfg.Serve, "serve", "", "serve the files over http on this address instead of writing them")
	fs.BoolVar(&cfg.Version, "version", false, "show version")
	fs.BoolVar(&globals.LOG, "log", true, "log progress")
	fs.BoolVar(&globals.DEBUG, "debug", false, "show debug output")

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("RUTAS")); err != nil {
		return nil, err
	}

	cfg.Input = DefaultInput
	if fs.NArg() > 0 {
		if _, err := os.Stat(fs.Arg(0)); err == nil {
			cfg.Input = fs.Arg(0)
			logf("Using route document %s\n", cfg.Input)
		} else {
			logf("Route document %s not found, using %s\n", fs.Arg(0), DefaultInput)
		}
	}

	var err error
	if cfg.Input, err = filepath.Abs(cfg.Input); err != nil {
		return nil, fmt.Errorf("resolving %q: %w", cfg.Input, err)
	}
	if cfg.KMLDir == "" {
		cfg.KMLDir = filepath.Join(filepath.Dir(cfg.Input), "kml")
	}
	if cfg.SVGDir == "" {
		cfg.SVGDir = filepath.Join(filepath.Dir(cfg.Input), "svg")
	}
	if cfg.KMLDir, err = filepath.Abs(cfg.KMLDir); err != nil {
		return nil, fmt.Errorf("resolving %q: %w", cfg.KMLDir, err)
	}
	if cfg.SVGDir, err = filepath.Abs(cfg.SVGDir); err != nil {
		return nil, fmt.Errorf("resolving %q: %w", cfg.SVGDir, err)
	}
	return cfg, nil
}

func (c *Config) KMLPath(id string) string { return filepath.Join(c.KMLDir, id+".kml") }
func (c *Config) SVGPath(id string) string { return filepath.Join(c.SVGDir, id+".svg") }
func (c *Config) PNGPath(id string) string { return filepath.Join(c.SVGDir, id+".png") }
