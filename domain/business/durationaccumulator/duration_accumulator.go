package durationaccumulator

import (
	dataErrors "bikeshare/domain/errors"
	"fmt"
)

// DurationAccumulator struct that collects the duration of trips.
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of durations of trips, in seconds. Kept as int64 so the sum of a whole city fits
type DurationAccumulator struct {
	Counter       int   `json:"counter"`
	TotalDuration int64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration int64) {
	da.Counter += 1
	da.TotalDuration += duration
}

// GetAverageDuration returns the arithmetic mean of the collected durations, without rounding
func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("%w: cannot get average duration, counter is zero", dataErrors.ErrEmptyResult)
	}
	return float64(da.TotalDuration) / float64(da.Counter), nil
}
