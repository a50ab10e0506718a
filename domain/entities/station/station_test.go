package station

import (
	"math"
	"testing"
)

func TestDirectoryDistanceKm(t *testing.T) {
	directory := make(Directory)
	directory.Add(StationData{Name: "Streeter Dr & Grand Ave", Latitude: 41.892278, Longitude: -87.612043})
	directory.Add(StationData{Name: "Lake Shore Dr & Monroe St", Latitude: 41.880958, Longitude: -87.616743})

	km, ok := directory.DistanceKm("Streeter Dr & Grand Ave", "Lake Shore Dr & Monroe St")
	if !ok {
		t.Fatal("both stations are known, distance should be found")
	}
	if km < 1.2 || km > 1.4 {
		t.Errorf("DistanceKm() = %v, want about 1.3 km", km)
	}

	km, ok = directory.DistanceKm("Streeter Dr & Grand Ave", "Streeter Dr & Grand Ave")
	if !ok || math.Abs(km) > 1e-9 {
		t.Errorf("DistanceKm() to itself = %v, %v, want 0, true", km, ok)
	}

	if _, ok = directory.DistanceKm("Streeter Dr & Grand Ave", "Unknown"); ok {
		t.Error("unknown end station should not be found")
	}
	if _, ok = directory.DistanceKm("Unknown", "Streeter Dr & Grand Ave"); ok {
		t.Error("unknown start station should not be found")
	}
}
