package globals

import (
	"github.com/tkrajina/go-elevations/geoelevations"
)

// SrtmClient is set when missing altitudes should be looked up (-ele).
var SrtmClient *geoelevations.Srtm

const VERSION = "v0.1.0"

var LOG, DEBUG bool
