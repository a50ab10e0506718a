package trip

import (
	"time"
)

// Column names of a city's trip CSV, plus the columns derived at load time
const (
	StartTimeColumn    = "Start Time"
	EndTimeColumn      = "End Time"
	StartStationColumn = "Start Station"
	EndStationColumn   = "End Station"
	DurationColumn     = "Trip Duration"
	UserTypeColumn     = "User Type"
	GenderColumn       = "Gender"
	BirthYearColumn    = "Birth Year"
	MonthColumn        = "month"
	DayOfWeekColumn    = "day_of_week"
)

// TimestampLayout default layout of the Start Time and End Time values
const TimestampLayout = "2006-01-02 15:04:05"

// TripRecord struct that contains one row of a city's trip data
// + StartTime: instant in which the trip begins
// + EndTime: instant in which the trip ends. Zero if the value is missing or unparseable
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip, in seconds
// + UserType: Subscriber, Customer, etc.
// + Gender: empty if the city does not carry the column or the value is blank
// + BirthYear: nil if the city does not carry the column or the value is blank
// + Month: month of StartTime, derived at load time
// + DayOfWeek: weekday name of StartTime, derived at load time
type TripRecord struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    *int      `json:"birth_year,omitempty"`
	Month        int       `json:"month"`
	DayOfWeek    string    `json:"day_of_week"`
}

// Route returns the combination of start and end station used by station statistics
func (tr TripRecord) Route() string {
	return RouteName(tr.StartStation, tr.EndStation)
}

// RouteName joins two station names the way trips are displayed, e.g. "A and B"
func RouteName(startStation string, endStation string) string {
	return startStation + " and " + endStation
}
