package statistics

import (
	"bikeshare/domain/business/tripcounter"
	"time"
)

// Reasons reported when an optional statistic cannot be computed
const (
	ReasonColumnNotAvailable = "column not available"
	ReasonNoValues           = "no values"
)

// TimeStats the most frequent times of travel
type TimeStats struct {
	MostCommonMonth tripcounter.ValueCounter[string] `json:"most_common_month"`
	MostCommonDay   tripcounter.ValueCounter[string] `json:"most_common_day"`
	MostCommonHour  tripcounter.ValueCounter[int]    `json:"most_common_hour"`
	Elapsed         time.Duration                    `json:"elapsed"`
}

// StationStats the most popular stations and trip
type StationStats struct {
	MostCommonStartStation tripcounter.ValueCounter[string] `json:"most_common_start_station"`
	MostCommonEndStation   tripcounter.ValueCounter[string] `json:"most_common_end_station"`
	MostCommonRoute        tripcounter.ValueCounter[string] `json:"most_common_route"`
	Elapsed                time.Duration                    `json:"elapsed"`
}

// DurationStats total and mean trip duration, in seconds
type DurationStats struct {
	Trips         int           `json:"trips"`
	TotalDuration int64         `json:"total_duration"`
	MeanDuration  float64       `json:"mean_duration"`
	Elapsed       time.Duration `json:"elapsed"`
}

// GenderStats counts per gender. Available is false if the city does not carry the column
type GenderStats struct {
	Available bool                               `json:"available"`
	Reason    string                             `json:"reason,omitempty"`
	Counters  []tripcounter.ValueCounter[string] `json:"counters,omitempty"`
}

// BirthYearStats earliest, most recent and most common year of birth. Available is false if the
// city does not carry the column or no trip has a value
type BirthYearStats struct {
	Available  bool                          `json:"available"`
	Reason     string                        `json:"reason,omitempty"`
	Earliest   int                           `json:"earliest,omitempty"`
	MostRecent int                           `json:"most_recent,omitempty"`
	MostCommon tripcounter.ValueCounter[int] `json:"most_common,omitempty"`
}

// UserStats counts per user type, gender and birth year aggregates
type UserStats struct {
	UserTypes []tripcounter.ValueCounter[string] `json:"user_types"`
	Gender    GenderStats                        `json:"gender"`
	BirthYear BirthYearStats                     `json:"birth_year"`
	Elapsed   time.Duration                      `json:"elapsed"`
}

// DistanceStats great-circle distance between start and end stations. Available is false if
// there are no station locations for the city
type DistanceStats struct {
	Available     bool          `json:"available"`
	Reason        string        `json:"reason,omitempty"`
	Trips         int           `json:"trips"`
	SkippedTrips  int           `json:"skipped_trips"`
	TotalDistance float64       `json:"total_distance_km"`
	MeanDistance  float64       `json:"mean_distance_km"`
	Elapsed       time.Duration `json:"elapsed"`
}

// Summary results of every statistic group computed over the same table
type Summary struct {
	Trips    int            `json:"trips"`
	Time     *TimeStats     `json:"time"`
	Station  *StationStats  `json:"station"`
	Duration *DurationStats `json:"duration"`
	User     *UserStats     `json:"user"`
	Distance *DistanceStats `json:"distance"`
}
