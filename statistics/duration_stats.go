package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	"fmt"
	"time"
)

// ComputeDurationStats returns the total and mean trip duration over every row of the table
func ComputeDurationStats(table *dataset.Table) (*DurationStats, error) {
	start := time.Now()

	durations, err := table.Durations()
	if err != nil {
		return nil, err
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, duration := range durations {
		accumulator.UpdateAccumulator(duration)
	}

	mean, err := accumulator.GetAverageDuration()
	if err != nil {
		return nil, fmt.Errorf("mean travel time: %w", err)
	}

	return &DurationStats{
		Trips:         accumulator.Counter,
		TotalDuration: accumulator.TotalDuration,
		MeanDuration:  mean,
		Elapsed:       time.Since(start),
	}, nil
}
