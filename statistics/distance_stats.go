package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"fmt"
	"time"
)

// ComputeDistanceStats returns the total and mean distance between the start and end station
// of each trip. Trips with an unknown station are skipped and counted
func ComputeDistanceStats(table *dataset.Table, stations station.Directory) (*DistanceStats, error) {
	start := time.Now()

	if len(stations) == 0 {
		return &DistanceStats{Reason: ReasonColumnNotAvailable, Elapsed: time.Since(start)}, nil
	}

	startStations, err := table.Strings(trip.StartStationColumn)
	if err != nil {
		return nil, err
	}

	endStations, err := table.Strings(trip.EndStationColumn)
	if err != nil {
		return nil, err
	}

	accumulator := distanceaccumulator.NewDistanceAccumulator()
	for idx := range startStations {
		km, ok := stations.DistanceKm(startStations[idx], endStations[idx])
		if !ok {
			accumulator.Skip()
			continue
		}
		accumulator.UpdateAccumulator(km)
	}

	if accumulator.Counter == 0 {
		return &DistanceStats{
			Reason:       ReasonNoValues,
			SkippedTrips: accumulator.Skipped,
			Elapsed:      time.Since(start),
		}, nil
	}

	mean, err := accumulator.GetAverageDistance()
	if err != nil {
		return nil, fmt.Errorf("mean distance: %w", err)
	}

	return &DistanceStats{
		Available:     true,
		Trips:         accumulator.Counter,
		SkippedTrips:  accumulator.Skipped,
		TotalDistance: accumulator.TotalDistance,
		MeanDistance:  mean,
		Elapsed:       time.Since(start),
	}, nil
}
