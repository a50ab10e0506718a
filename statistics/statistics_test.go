package statistics

import (
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
	"errors"
	"testing"
)

func TestScenarioFilteredByMonth(t *testing.T) {
	table := filter(t, newTable(t, scenarioCSV), "january", "all")
	if table.Len() != 2 {
		t.Fatalf("filter(january) kept %d trips, want 2", table.Len())
	}

	stationStats, err := ComputeStationStats(table)
	if err != nil {
		t.Fatalf("ComputeStationStats() error: %v", err)
	}
	if stationStats.MostCommonStartStation.Value != "S1" {
		t.Errorf("most common start station = %s, want S1", stationStats.MostCommonStartStation.Value)
	}
	if stationStats.MostCommonEndStation.Value != "S2" {
		t.Errorf("most common end station = %s, want S2", stationStats.MostCommonEndStation.Value)
	}
	if stationStats.MostCommonRoute.Value != "S1 and S2" || stationStats.MostCommonRoute.Counter != 2 {
		t.Errorf("most common route = %+v, want S1 and S2 (2)", stationStats.MostCommonRoute)
	}

	durationStats, err := ComputeDurationStats(table)
	if err != nil {
		t.Fatalf("ComputeDurationStats() error: %v", err)
	}
	if durationStats.TotalDuration != 300 || durationStats.MeanDuration != 150.0 || durationStats.Trips != 2 {
		t.Errorf("duration stats = %+v, want total 300, mean 150", durationStats)
	}
}

func TestComputeStationStatsSkipsBlankStations(t *testing.T) {
	csv := `Start Time,Start Station,End Station
2017-01-02 09:00:00,,B
2017-01-02 09:00:00,,B
2017-01-02 09:00:00,A,B
2017-01-02 09:00:00,C,
`
	stationStats, err := ComputeStationStats(newTable(t, csv))
	if err != nil {
		t.Fatalf("ComputeStationStats() error: %v", err)
	}

	if stationStats.MostCommonStartStation.Value != "A" || stationStats.MostCommonStartStation.Counter != 1 {
		t.Errorf("most common start station = %+v, want A (1)", stationStats.MostCommonStartStation)
	}
	if stationStats.MostCommonEndStation.Value != "B" || stationStats.MostCommonEndStation.Counter != 3 {
		t.Errorf("most common end station = %+v, want B (3)", stationStats.MostCommonEndStation)
	}
	if stationStats.MostCommonRoute.Value != "A and B" || stationStats.MostCommonRoute.Counter != 1 {
		t.Errorf("most common route = %+v, want A and B (1)", stationStats.MostCommonRoute)
	}
}

func TestComputeStationStatsOnlyBlankStations(t *testing.T) {
	csv := `Start Time,Start Station,End Station
2017-01-02 09:00:00,,
`
	_, err := ComputeStationStats(newTable(t, csv))
	if !errors.Is(err, dataErrors.ErrEmptyResult) {
		t.Fatalf("ComputeStationStats() error = %v, want ErrEmptyResult", err)
	}
}

func TestComputeTimeStats(t *testing.T) {
	timeStats, err := ComputeTimeStats(newTable(t, scenarioCSV))
	if err != nil {
		t.Fatalf("ComputeTimeStats() error: %v", err)
	}

	want := TimeStats{
		MostCommonMonth: tripcounter.ValueCounter[string]{Value: "January", Counter: 2},
		MostCommonDay:   tripcounter.ValueCounter[string]{Value: "Monday", Counter: 2},
		MostCommonHour:  tripcounter.ValueCounter[int]{Value: 9, Counter: 2},
	}
	if timeStats.MostCommonMonth != want.MostCommonMonth {
		t.Errorf("most common month = %+v, want %+v", timeStats.MostCommonMonth, want.MostCommonMonth)
	}
	if timeStats.MostCommonDay != want.MostCommonDay {
		t.Errorf("most common day = %+v, want %+v", timeStats.MostCommonDay, want.MostCommonDay)
	}
	if timeStats.MostCommonHour != want.MostCommonHour {
		t.Errorf("most common hour = %+v, want %+v", timeStats.MostCommonHour, want.MostCommonHour)
	}
}

func TestComputeTimeStatsTieKeepsFirstRow(t *testing.T) {
	csv := `Start Time,Trip Duration
2017-02-07 17:00:00,10
2017-01-02 09:00:00,10
2017-01-02 09:00:00,10
2017-02-07 17:00:00,10
`
	timeStats, err := ComputeTimeStats(newTable(t, csv))
	if err != nil {
		t.Fatalf("ComputeTimeStats() error: %v", err)
	}
	if timeStats.MostCommonMonth.Value != "February" || timeStats.MostCommonDay.Value != "Tuesday" || timeStats.MostCommonHour.Value != 17 {
		t.Errorf("ties should keep the first row values, got %+v", timeStats)
	}
}

func TestComputeTimeStatsDoesNotAddColumns(t *testing.T) {
	table := newTable(t, scenarioCSV)
	before := len(table.Columns())

	if _, err := ComputeTimeStats(table); err != nil {
		t.Fatalf("ComputeTimeStats() error: %v", err)
	}
	if _, err := ComputeStationStats(table); err != nil {
		t.Fatalf("ComputeStationStats() error: %v", err)
	}
	if len(table.Columns()) != before {
		t.Errorf("statistics added columns to the table: %v", table.Columns())
	}
}

func TestComputeDurationStats(t *testing.T) {
	csv := `Start Time,Trip Duration
2017-01-02 09:00:00,10
2017-01-02 09:00:00,20
2017-01-02 09:00:00,30
`
	durationStats, err := ComputeDurationStats(newTable(t, csv))
	if err != nil {
		t.Fatalf("ComputeDurationStats() error: %v", err)
	}
	if durationStats.TotalDuration != 60 || durationStats.MeanDuration != 20.0 {
		t.Errorf("duration stats = %+v, want total 60, mean 20", durationStats)
	}
}

func TestComputeUserStats(t *testing.T) {
	userStats, err := ComputeUserStats(newTable(t, scenarioCSV))
	if err != nil {
		t.Fatalf("ComputeUserStats() error: %v", err)
	}

	if len(userStats.UserTypes) != 2 || userStats.UserTypes[0].Value != "Subscriber" || userStats.UserTypes[0].Counter != 2 {
		t.Errorf("user types = %+v, want Subscriber (2) first", userStats.UserTypes)
	}

	if !userStats.Gender.Available {
		t.Fatal("gender should be available")
	}
	if len(userStats.Gender.Counters) != 2 {
		t.Errorf("gender counters = %+v, blank values should not be counted", userStats.Gender.Counters)
	}

	birthYear := userStats.BirthYear
	if !birthYear.Available || birthYear.Earliest != 1975 || birthYear.MostRecent != 1989 || birthYear.MostCommon.Value != 1989 {
		t.Errorf("birth year stats = %+v, want earliest 1975, most recent 1989, most common 1989", birthYear)
	}
}

func TestComputeUserStatsWithoutDemographics(t *testing.T) {
	csv := `Start Time,Trip Duration,Start Station,End Station,User Type
2017-01-02 09:00:00,10,S1,S2,Subscriber
2017-01-02 09:00:00,20,S1,S2,Customer
`
	table := newTable(t, csv)

	userStats, err := ComputeUserStats(table)
	if err != nil {
		t.Fatalf("ComputeUserStats() error: %v", err)
	}
	if userStats.Gender.Available || userStats.Gender.Reason != ReasonColumnNotAvailable {
		t.Errorf("gender = %+v, want not available", userStats.Gender)
	}
	if userStats.BirthYear.Available || userStats.BirthYear.Reason != ReasonColumnNotAvailable {
		t.Errorf("birth year = %+v, want not available", userStats.BirthYear)
	}

	summary, err := NewEngine("test", nil).Run(table)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if summary.Duration.TotalDuration != 30 || summary.Station.MostCommonRoute.Value != "S1 and S2" {
		t.Errorf("other groups should compute normally, got %+v %+v", summary.Duration, summary.Station)
	}
}

func TestComputeUserStatsBlankBirthYears(t *testing.T) {
	csv := `Start Time,User Type,Gender,Birth Year
2017-01-02 09:00:00,Customer,,
`
	userStats, err := ComputeUserStats(newTable(t, csv))
	if err != nil {
		t.Fatalf("ComputeUserStats() error: %v", err)
	}
	if userStats.BirthYear.Available || userStats.BirthYear.Reason != ReasonNoValues {
		t.Errorf("birth year = %+v, want not available, no values", userStats.BirthYear)
	}
	if !userStats.Gender.Available || len(userStats.Gender.Counters) != 0 {
		t.Errorf("gender = %+v, want available without counters", userStats.Gender)
	}
}

func TestComputeUserStatsCorruptBirthYear(t *testing.T) {
	csv := `Start Time,User Type,Birth Year
2017-01-02 09:00:00,Customer,1980
2017-01-02 09:00:00,Customer,unknown
`
	_, err := ComputeUserStats(newTable(t, csv))
	if !errors.Is(err, dataErrors.ErrDataFormat) {
		t.Fatalf("ComputeUserStats() error = %v, want ErrDataFormat", err)
	}
}

func TestRequiredColumnMissing(t *testing.T) {
	csv := `Start Time,Trip Duration
2017-01-02 09:00:00,10
`
	table := newTable(t, csv)

	if _, err := ComputeStationStats(table); !errors.Is(err, dataErrors.ErrMissingColumn) {
		t.Errorf("ComputeStationStats() error = %v, want ErrMissingColumn", err)
	}
	if _, err := ComputeUserStats(table); !errors.Is(err, dataErrors.ErrMissingColumn) {
		t.Errorf("ComputeUserStats() error = %v, want ErrMissingColumn", err)
	}
	if _, err := NewEngine("test", nil).Run(table); !errors.Is(err, dataErrors.ErrMissingColumn) {
		t.Errorf("Run() error = %v, want ErrMissingColumn", err)
	}
}

func TestEmptyTable(t *testing.T) {
	table := filter(t, newTable(t, scenarioCSV), "june", "all")
	if table.Len() != 0 {
		t.Fatalf("filter(june) kept %d trips, want 0", table.Len())
	}

	if _, err := ComputeTimeStats(table); !errors.Is(err, dataErrors.ErrEmptyResult) {
		t.Errorf("ComputeTimeStats() error = %v, want ErrEmptyResult", err)
	}
	if _, err := ComputeStationStats(table); !errors.Is(err, dataErrors.ErrEmptyResult) {
		t.Errorf("ComputeStationStats() error = %v, want ErrEmptyResult", err)
	}
	if _, err := ComputeDurationStats(table); !errors.Is(err, dataErrors.ErrEmptyResult) {
		t.Errorf("ComputeDurationStats() error = %v, want ErrEmptyResult", err)
	}
	if _, err := ComputeUserStats(table); !errors.Is(err, dataErrors.ErrEmptyResult) {
		t.Errorf("ComputeUserStats() error = %v, want ErrEmptyResult", err)
	}
	if _, err := NewEngine("test", nil).Run(table); !errors.Is(err, dataErrors.ErrEmptyResult) {
		t.Errorf("Run() error = %v, want ErrEmptyResult", err)
	}
}

func TestComputeDistanceStats(t *testing.T) {
	table := newTable(t, scenarioCSV)
	stations := station.Directory{
		"S1": {Name: "S1", Latitude: 41.892278, Longitude: -87.612043},
		"S2": {Name: "S2", Latitude: 41.880958, Longitude: -87.616743},
	}

	distanceStats, err := ComputeDistanceStats(table, stations)
	if err != nil {
		t.Fatalf("ComputeDistanceStats() error: %v", err)
	}
	if !distanceStats.Available || distanceStats.Trips != 2 || distanceStats.SkippedTrips != 1 {
		t.Errorf("distance stats = %+v, want 2 trips measured and 1 skipped", distanceStats)
	}
	if distanceStats.MeanDistance < 1.2 || distanceStats.MeanDistance > 1.4 {
		t.Errorf("mean distance = %v, want about 1.3 km", distanceStats.MeanDistance)
	}

	distanceStats, err = ComputeDistanceStats(table, nil)
	if err != nil {
		t.Fatalf("ComputeDistanceStats() error: %v", err)
	}
	if distanceStats.Available || distanceStats.Reason != ReasonColumnNotAvailable {
		t.Errorf("distance stats without stations = %+v, want not available", distanceStats)
	}

	distanceStats, err = ComputeDistanceStats(table, station.Directory{"X": {Name: "X"}})
	if err != nil {
		t.Fatalf("ComputeDistanceStats() error: %v", err)
	}
	if distanceStats.Available || distanceStats.Reason != ReasonNoValues || distanceStats.SkippedTrips != 3 {
		t.Errorf("distance stats with unknown stations = %+v, want not available, 3 skipped", distanceStats)
	}
}

func TestEngineRun(t *testing.T) {
	summary, err := NewEngine("test", nil).Run(newTable(t, scenarioCSV))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if summary.Trips != 3 {
		t.Errorf("Trips = %d, want 3", summary.Trips)
	}
	if summary.Time == nil || summary.Station == nil || summary.Duration == nil || summary.User == nil || summary.Distance == nil {
		t.Fatalf("every group should be computed: %+v", summary)
	}
	if summary.Duration.TotalDuration != 350 {
		t.Errorf("total duration = %d, want 350", summary.Duration.TotalDuration)
	}
}
