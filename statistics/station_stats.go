package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	"fmt"
	"time"
)

// ComputeStationStats returns the most common start station, end station and route.
// The route is built per row as "<start> and <end>", rows with a blank station are not a route
func ComputeStationStats(table *dataset.Table) (*StationStats, error) {
	start := time.Now()

	startStations, err := table.Strings(trip.StartStationColumn)
	if err != nil {
		return nil, err
	}

	endStations, err := table.Strings(trip.EndStationColumn)
	if err != nil {
		return nil, err
	}

	routes := tripcounter.NewTripCounter[string]()
	for idx := range startStations {
		if dataset.IsBlank(startStations[idx]) || dataset.IsBlank(endStations[idx]) {
			continue
		}
		routes.UpdateCounter(trip.RouteName(startStations[idx], endStations[idx]))
	}

	startMode, err := countNonBlank(startStations).Mode()
	if err != nil {
		return nil, fmt.Errorf("most common start station: %w", err)
	}

	endMode, err := countNonBlank(endStations).Mode()
	if err != nil {
		return nil, fmt.Errorf("most common end station: %w", err)
	}

	routeMode, err := routes.Mode()
	if err != nil {
		return nil, fmt.Errorf("most common route: %w", err)
	}

	return &StationStats{
		MostCommonStartStation: startMode,
		MostCommonEndStation:   endMode,
		MostCommonRoute:        routeMode,
		Elapsed:                time.Since(start),
	}, nil
}
