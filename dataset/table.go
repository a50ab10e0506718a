package dataset

import (
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"math"
	"strconv"
	"strings"
	"time"
)

// Table trip records of a single city. A Table is never mutated once built: filters and
// derived columns always produce a new Table.
type Table struct {
	city            string
	timestampLayout string
	df              dataframe.DataFrame
}

// NewTable wraps an already loaded DataFrame. Derived columns are not computed, see Derive
func NewTable(city string, df dataframe.DataFrame, timestampLayout string) *Table {
	if timestampLayout == "" {
		timestampLayout = trip.TimestampLayout
	}
	return &Table{
		city:            city,
		timestampLayout: timestampLayout,
		df:              df,
	}
}

// Derive parses the Start Time column and returns a new Table with the month and day_of_week
// columns added. A single unparseable timestamp, or one outside january to june, fails the whole table
func Derive(city string, df dataframe.DataFrame, timestampLayout string) (*Table, error) {
	table := NewTable(city, df, timestampLayout)
	startTimes, err := table.Timestamps(trip.StartTimeColumn)
	if err != nil {
		return nil, err
	}

	months := make([]int, len(startTimes))
	daysOfWeek := make([]string, len(startTimes))
	for idx, startTime := range startTimes {
		if _, ok := trip.MonthName(int(startTime.Month())); !ok {
			return nil, fmt.Errorf("%w: [city: %s][row: %v] %s %s is outside january to june", dataErrors.ErrDataFormat, city, idx+1, trip.StartTimeColumn, startTime.Format(table.timestampLayout))
		}
		months[idx] = int(startTime.Month())
		daysOfWeek[idx] = startTime.Weekday().String()
	}

	derived := df.
		Mutate(series.New(months, series.Int, trip.MonthColumn)).
		Mutate(series.New(daysOfWeek, series.String, trip.DayOfWeekColumn))
	if derived.Err != nil {
		return nil, fmt.Errorf("%w: error deriving temporal columns: %s", dataErrors.ErrDataFormat, derived.Err.Error())
	}

	return table.with(derived), nil
}

func (t *Table) with(df dataframe.DataFrame) *Table {
	return &Table{
		city:            t.city,
		timestampLayout: t.timestampLayout,
		df:              df,
	}
}

func (t *Table) City() string {
	return t.city
}

// Len returns the amount of trips in the table
func (t *Table) Len() int {
	return t.df.Nrow()
}

func (t *Table) Columns() []string {
	return t.df.Names()
}

func (t *Table) HasColumn(name string) bool {
	for _, column := range t.df.Names() {
		if column == name {
			return true
		}
	}
	return false
}

// Strings returns the raw values of a column in row order
func (t *Table) Strings(column string) ([]string, error) {
	values, err := t.column(column)
	if err != nil {
		return nil, err
	}
	return values.Records(), nil
}

// Ints returns the values of an integer column, e.g. the derived month
func (t *Table) Ints(column string) ([]int, error) {
	values, err := t.column(column)
	if err != nil {
		return nil, err
	}

	if values.Type() == series.Int {
		ints, err := values.Int()
		if err != nil {
			return nil, fmt.Errorf("%w: column %s: %s", dataErrors.ErrDataFormat, column, err.Error())
		}
		return ints, nil
	}

	records := values.Records()
	ints := make([]int, len(records))
	for idx, record := range records {
		value, err := strconv.Atoi(strings.TrimSpace(record))
		if err != nil {
			return nil, t.formatError(column, idx, record)
		}
		ints[idx] = value
	}
	return ints, nil
}

// Timestamps parses every value of a timestamp column with the table layout
func (t *Table) Timestamps(column string) ([]time.Time, error) {
	records, err := t.Strings(column)
	if err != nil {
		return nil, err
	}

	timestamps := make([]time.Time, len(records))
	for idx, record := range records {
		timestamp, err := time.Parse(t.timestampLayout, strings.TrimSpace(record))
		if err != nil {
			return nil, t.formatError(column, idx, record)
		}
		timestamps[idx] = timestamp
	}
	return timestamps, nil
}

// Durations parses the Trip Duration column, rounding each value to whole seconds
func (t *Table) Durations() ([]int64, error) {
	records, err := t.Strings(trip.DurationColumn)
	if err != nil {
		return nil, err
	}

	durations := make([]int64, len(records))
	for idx, record := range records {
		duration, err := parseDuration(record)
		if err != nil {
			return nil, t.formatError(trip.DurationColumn, idx, record)
		}
		durations[idx] = duration
	}
	return durations, nil
}

// Years parses a year column skipping blank values. Non-blank values that are not numbers are
// reported as ErrDataFormat
func (t *Table) Years(column string) ([]int, error) {
	records, err := t.Strings(column)
	if err != nil {
		return nil, err
	}

	var years []int
	for idx, record := range records {
		if IsBlank(record) {
			continue
		}

		year, err := parseYear(record)
		if err != nil {
			return nil, t.formatError(column, idx, record)
		}
		years = append(years, year)
	}
	return years, nil
}

// Page returns the trips between offset (included) and offset+size (excluded)
func (t *Table) Page(offset int, size int) ([]trip.TripRecord, error) {
	if offset < 0 || size <= 0 || offset >= t.Len() {
		return nil, nil
	}

	end := offset + size
	if end > t.Len() {
		end = t.Len()
	}

	indexes := make([]int, 0, end-offset)
	for idx := offset; idx < end; idx++ {
		indexes = append(indexes, idx)
	}

	page := t.with(t.df.Subset(indexes))
	if page.df.Err != nil {
		return nil, fmt.Errorf("error reading rows %v to %v: %w", offset, end, page.df.Err)
	}
	return page.tripRecords(offset)
}

func (t *Table) tripRecords(offset int) ([]trip.TripRecord, error) {
	startTimes, err := t.Timestamps(trip.StartTimeColumn)
	if err != nil {
		return nil, err
	}

	startStations, err := t.Strings(trip.StartStationColumn)
	if err != nil {
		return nil, err
	}

	endStations, err := t.Strings(trip.EndStationColumn)
	if err != nil {
		return nil, err
	}

	durations, err := t.Strings(trip.DurationColumn)
	if err != nil {
		return nil, err
	}

	userTypes, err := t.Strings(trip.UserTypeColumn)
	if err != nil {
		return nil, err
	}

	endTimes := t.optionalStrings(trip.EndTimeColumn)
	genders := t.optionalStrings(trip.GenderColumn)
	birthYears := t.optionalStrings(trip.BirthYearColumn)

	records := make([]trip.TripRecord, t.Len())
	for idx := range records {
		duration, err := strconv.ParseFloat(strings.TrimSpace(durations[idx]), 64)
		if err != nil {
			return nil, t.formatError(trip.DurationColumn, offset+idx, durations[idx])
		}

		record := trip.TripRecord{
			StartTime:    startTimes[idx],
			StartStation: startStations[idx],
			EndStation:   endStations[idx],
			Duration:     duration,
			UserType:     blankToEmpty(userTypes[idx]),
			Month:        int(startTimes[idx].Month()),
			DayOfWeek:    startTimes[idx].Weekday().String(),
		}

		if endTimes != nil {
			// a missing end time is displayed as empty, it is not needed by any statistic
			record.EndTime, _ = time.Parse(t.timestampLayout, strings.TrimSpace(endTimes[idx]))
		}

		if genders != nil {
			record.Gender = blankToEmpty(genders[idx])
		}

		if birthYears != nil && !IsBlank(birthYears[idx]) {
			year, err := parseYear(birthYears[idx])
			if err != nil {
				return nil, t.formatError(trip.BirthYearColumn, offset+idx, birthYears[idx])
			}
			record.BirthYear = &year
		}

		records[idx] = record
	}
	return records, nil
}

func (t *Table) optionalStrings(column string) []string {
	if !t.HasColumn(column) {
		return nil
	}
	values, _ := t.Strings(column)
	return values
}

func (t *Table) column(column string) (series.Series, error) {
	if !t.HasColumn(column) {
		return series.Series{}, fmt.Errorf("%w: %s not found in %s data", dataErrors.ErrMissingColumn, column, t.city)
	}

	values := t.df.Col(column)
	if values.Err != nil {
		return series.Series{}, fmt.Errorf("%w: column %s: %s", dataErrors.ErrDataFormat, column, values.Err.Error())
	}
	return values, nil
}

// formatError rows are reported 1-based, not counting the header
func (t *Table) formatError(column string, idx int, value string) error {
	return fmt.Errorf("%w: [city: %s][row: %v] invalid %s value %q", dataErrors.ErrDataFormat, t.city, idx+1, column, value)
}

// IsBlank returns true for the values the CSV reader uses to represent a missing cell
func IsBlank(value string) bool {
	switch strings.TrimSpace(value) {
	case "", "NaN", "NA", "<nil>":
		return true
	}
	return false
}

func blankToEmpty(value string) string {
	if IsBlank(value) {
		return ""
	}
	return value
}

func parseDuration(value string) (int64, error) {
	duration, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, fmt.Errorf("invalid duration %v", duration)
	}
	return int64(math.Round(duration)), nil
}

// parseYear birth years are stored as floats in some cities, e.g. "1989.0"
func parseYear(value string) (int, error) {
	year, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(year) || math.IsInf(year, 0) {
		return 0, fmt.Errorf("invalid year %v", year)
	}
	return int(year), nil
}
