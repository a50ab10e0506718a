package main

import (
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/statistics"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"io"
	"strconv"
	"strings"
	"time"
)

var divider = strings.Repeat("-", 40)

var (
	ColorCyan   = lipgloss.Color("#00FFFF")
	ColorRed    = lipgloss.Color("#FF0000")
	ColorYellow = lipgloss.Color("#FFFF00")
	ColorGray   = lipgloss.Color("#666666")
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
	LabelStyle   = lipgloss.NewStyle().Foreground(ColorYellow)
	DimStyle     = lipgloss.NewStyle().Foreground(ColorGray)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	DividerStyle = lipgloss.NewStyle().Foreground(ColorGray)
)

const notAvailable = "data not available"

func printLine(w io.Writer, label string, value string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", LabelStyle.Render(label+":"), value)
}

func printHeader(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "\n%s\n\n", TitleStyle.Render(title))
}

func printFooter(w io.Writer, elapsed time.Duration) {
	_, _ = fmt.Fprintf(w, "\n%s\n%s\n", DimStyle.Render(fmt.Sprintf("This took %v seconds.", elapsed.Seconds())), DividerStyle.Render(divider))
}

func withCounter(value string, counter int) string {
	return fmt.Sprintf("%s %s", value, DimStyle.Render(fmt.Sprintf("(%v trips)", counter)))
}

func printCounters[K comparable](w io.Writer, counters []tripcounter.ValueCounter[K]) {
	for _, counter := range counters {
		_, _ = fmt.Fprintf(w, "  %-20v %v\n", counter.Value, counter.Counter)
	}
}

func DisplayTimeStats(w io.Writer, stats *statistics.TimeStats) {
	printHeader(w, "Calculating The Most Frequent Times of Travel...")
	printLine(w, "Most common month", withCounter(stats.MostCommonMonth.Value, stats.MostCommonMonth.Counter))
	printLine(w, "Most common day of week", withCounter(stats.MostCommonDay.Value, stats.MostCommonDay.Counter))
	printLine(w, "Most common start hour", withCounter(strconv.Itoa(stats.MostCommonHour.Value), stats.MostCommonHour.Counter))
	printFooter(w, stats.Elapsed)
}

func DisplayStationStats(w io.Writer, stats *statistics.StationStats) {
	printHeader(w, "Calculating The Most Popular Stations and Trip...")
	printLine(w, "Most common start station", withCounter(stats.MostCommonStartStation.Value, stats.MostCommonStartStation.Counter))
	printLine(w, "Most common end station", withCounter(stats.MostCommonEndStation.Value, stats.MostCommonEndStation.Counter))
	printLine(w, "Most common combination of start and end station", withCounter(stats.MostCommonRoute.Value, stats.MostCommonRoute.Counter))
	printFooter(w, stats.Elapsed)
}

func DisplayDurationStats(w io.Writer, stats *statistics.DurationStats) {
	printHeader(w, "Calculating Trip Duration...")
	printLine(w, "Total travel time", fmt.Sprintf("%v seconds", stats.TotalDuration))
	printLine(w, "Mean travel time", fmt.Sprintf("%v seconds", stats.MeanDuration))
	printFooter(w, stats.Elapsed)
}

func DisplayUserStats(w io.Writer, stats *statistics.UserStats) {
	printHeader(w, "Calculating User Stats...")
	printLine(w, "Counts of user types", "")
	printCounters(w, stats.UserTypes)

	if stats.Gender.Available {
		printLine(w, "Counts of gender", "")
		printCounters(w, stats.Gender.Counters)
	} else {
		printLine(w, "Gender", notAvailable)
	}

	if stats.BirthYear.Available {
		printLine(w, "Earliest birth year", strconv.Itoa(stats.BirthYear.Earliest))
		printLine(w, "Most recent birth year", strconv.Itoa(stats.BirthYear.MostRecent))
		printLine(w, "Most common birth year", withCounter(strconv.Itoa(stats.BirthYear.MostCommon.Value), stats.BirthYear.MostCommon.Counter))
	} else {
		printLine(w, "Birth Year", notAvailable)
	}
	printFooter(w, stats.Elapsed)
}

func DisplayDistanceStats(w io.Writer, stats *statistics.DistanceStats) {
	printHeader(w, "Calculating Trip Distance...")
	if !stats.Available {
		printLine(w, "Distance", fmt.Sprintf("%s (%s)", notAvailable, stats.Reason))
	} else {
		printLine(w, "Total distance", fmt.Sprintf("%.2f km", stats.TotalDistance))
		printLine(w, "Mean distance", fmt.Sprintf("%.2f km", stats.MeanDistance))
		printLine(w, "Trips measured", fmt.Sprintf("%v (%v skipped, unknown station)", stats.Trips, stats.SkippedTrips))
	}
	printFooter(w, stats.Elapsed)
}

// DisplaySummary prints every statistic group in the order they were computed
func DisplaySummary(w io.Writer, summary *statistics.Summary) {
	DisplayTimeStats(w, summary.Time)
	DisplayStationStats(w, summary.Station)
	DisplayDurationStats(w, summary.Duration)
	DisplayUserStats(w, summary.User)
	DisplayDistanceStats(w, summary.Distance)
}

// DisplayTrips prints a page of raw trips, offset is the index of the first one
func DisplayTrips(w io.Writer, offset int, trips []trip.TripRecord) {
	for idx, record := range trips {
		birthYear := ""
		if record.BirthYear != nil {
			birthYear = strconv.Itoa(*record.BirthYear)
		}

		endTime := ""
		if !record.EndTime.IsZero() {
			endTime = record.EndTime.Format(trip.TimestampLayout)
		}

		_, _ = fmt.Fprintf(w, "%s %s | %s | %s -> %s | %vs | %s | %s | %s\n",
			DimStyle.Render(fmt.Sprintf("[%v]", offset+idx)),
			record.StartTime.Format(trip.TimestampLayout),
			endTime,
			record.StartStation,
			record.EndStation,
			record.Duration,
			record.UserType,
			record.Gender,
			birthYear,
		)
	}
}

func DisplayError(w io.Writer, message string, err error) {
	_, _ = fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render(message+":"), err.Error())
}
