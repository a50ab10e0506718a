package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	"time"
)

// ComputeUserStats returns counts per user type and, when the city carries them, counts per
// gender and birth year aggregates. Missing optional columns are reported as not available;
// a present column with corrupt values is an error
func ComputeUserStats(table *dataset.Table) (*UserStats, error) {
	start := time.Now()

	if table.Len() == 0 {
		return nil, fmt.Errorf("%w: no trips to compute user stats", dataErrors.ErrEmptyResult)
	}

	userTypes, err := table.Strings(trip.UserTypeColumn)
	if err != nil {
		return nil, err
	}

	genderStats, err := computeGenderStats(table)
	if err != nil {
		return nil, err
	}

	birthYearStats, err := computeBirthYearStats(table)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		UserTypes: countNonBlank(userTypes).Counters(),
		Gender:    genderStats,
		BirthYear: birthYearStats,
		Elapsed:   time.Since(start),
	}, nil
}

func computeGenderStats(table *dataset.Table) (GenderStats, error) {
	if !table.HasColumn(trip.GenderColumn) {
		return GenderStats{Reason: ReasonColumnNotAvailable}, nil
	}

	genders, err := table.Strings(trip.GenderColumn)
	if err != nil {
		return GenderStats{}, err
	}

	return GenderStats{
		Available: true,
		Counters:  countNonBlank(genders).Counters(),
	}, nil
}

func computeBirthYearStats(table *dataset.Table) (BirthYearStats, error) {
	if !table.HasColumn(trip.BirthYearColumn) {
		return BirthYearStats{Reason: ReasonColumnNotAvailable}, nil
	}

	years, err := table.Years(trip.BirthYearColumn)
	if err != nil {
		return BirthYearStats{}, err
	}

	if len(years) == 0 {
		return BirthYearStats{Reason: ReasonNoValues}, nil
	}

	earliest, mostRecent := years[0], years[0]
	for _, year := range years[1:] {
		if year < earliest {
			earliest = year
		}
		if year > mostRecent {
			mostRecent = year
		}
	}

	mostCommon, err := tripcounter.NewTripCounterFrom(years).Mode()
	if err != nil {
		return BirthYearStats{}, fmt.Errorf("most common birth year: %w", err)
	}

	return BirthYearStats{
		Available:  true,
		Earliest:   earliest,
		MostRecent: mostRecent,
		MostCommon: mostCommon,
	}, nil
}

// countNonBlank blank cells are missing values, they are not a category
func countNonBlank(values []string) *tripcounter.TripCounter[string] {
	counter := tripcounter.NewTripCounter[string]()
	for _, value := range values {
		if dataset.IsBlank(value) {
			continue
		}
		counter.UpdateCounter(value)
	}
	return counter
}
