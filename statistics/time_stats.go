package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	"time"
)

// ComputeTimeStats returns the most common month, day of week and start hour.
// The hour is derived from Start Time on every call, the table is not modified
func ComputeTimeStats(table *dataset.Table) (*TimeStats, error) {
	start := time.Now()

	months, err := table.Ints(trip.MonthColumn)
	if err != nil {
		return nil, err
	}

	monthMode, err := tripcounter.NewTripCounterFrom(months).Mode()
	if err != nil {
		return nil, fmt.Errorf("most common month: %w", err)
	}

	monthName, ok := trip.MonthName(monthMode.Value)
	if !ok {
		return nil, fmt.Errorf("%w: month %v is outside the dataset range", dataErrors.ErrDataFormat, monthMode.Value)
	}

	days, err := table.Strings(trip.DayOfWeekColumn)
	if err != nil {
		return nil, err
	}

	dayMode, err := tripcounter.NewTripCounterFrom(days).Mode()
	if err != nil {
		return nil, fmt.Errorf("most common day: %w", err)
	}

	startTimes, err := table.Timestamps(trip.StartTimeColumn)
	if err != nil {
		return nil, err
	}

	hours := tripcounter.NewTripCounter[int]()
	for _, startTime := range startTimes {
		hours.UpdateCounter(startTime.Hour())
	}

	hourMode, err := hours.Mode()
	if err != nil {
		return nil, fmt.Errorf("most common hour: %w", err)
	}

	return &TimeStats{
		MostCommonMonth: tripcounter.ValueCounter[string]{Value: monthName, Counter: monthMode.Counter},
		MostCommonDay:   dayMode,
		MostCommonHour:  hourMode,
		Elapsed:         time.Since(start),
	}, nil
}
