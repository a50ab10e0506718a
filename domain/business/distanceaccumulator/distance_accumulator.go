package distanceaccumulator

import (
	dataErrors "bikeshare/domain/errors"
	"fmt"
)

// DistanceAccumulator struct that collects data about the distance traveled between stations
// + Counter: counts the amount of trips whose stations were located
// + Skipped: counts the amount of trips with at least one unknown station
// + TotalDistance: sum of distances traveled, in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	Skipped       int     `json:"skipped"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

func (da *DistanceAccumulator) Skip() {
	da.Skipped += 1
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("%w: cannot get average distance, counter is zero", dataErrors.ErrEmptyResult)
	}
	return da.TotalDistance / float64(da.Counter), nil
}
