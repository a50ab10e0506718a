package station

import "github.com/umahmood/haversine"

// Column names of a stations CSV
const (
	NameColumn      = "Name"
	LatitudeColumn  = "Latitude"
	LongitudeColumn = "Longitude"
)

// StationData struct that contains the location of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coord returns the station location as a haversine coordinate
func (sd StationData) Coord() haversine.Coord {
	return haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
}

// Directory stations of a city indexed by name
type Directory map[string]StationData

func (d Directory) Add(station StationData) {
	d[station.Name] = station
}

func (d Directory) Lookup(name string) (StationData, bool) {
	station, ok := d[name]
	return station, ok
}

// DistanceKm returns the great-circle distance between two stations of the directory.
// The boolean is false if any of them is unknown
func (d Directory) DistanceKm(startStation string, endStation string) (float64, bool) {
	start, ok := d.Lookup(startStation)
	if !ok {
		return 0, false
	}

	end, ok := d.Lookup(endStation)
	if !ok {
		return 0, false
	}

	_, km := haversine.Distance(start.Coord(), end.Coord())
	return km, true
}
