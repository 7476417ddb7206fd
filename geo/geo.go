package geo

import (
	"math"
)

const EarthRadius = 6371.0 // km

type Line []Pos

// Length in km along the line (only considering lat and lon)
func (l Line) Length() float64 {
	var total float64
	for i := 1; i < len(l); i++ {
		total += l[i-1].Distance(l[i])
	}
	return total
}

type Pos struct {
	Lon, Lat, Ele float64
}

// Distance in km to another location (haversine, only considering lat and lon)
func (p1 Pos) Distance(p2 Pos) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	dlat := lat2 - lat1
	dlon := (p2.Lon - p1.Lon) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	if a > 1 {
		a = 1
	}
	return 2 * EarthRadius * math.Asin(math.Sqrt(a))
}

// Meters is the distance to another location rounded to whole meters.
func (p1 Pos) Meters(p2 Pos) int {
	return int(math.Round(p1.Distance(p2) * 1000))
}
