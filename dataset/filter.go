package dataset

import (
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Filter returns a new Table with the trips that match both the month and the day.
// "all" disables the corresponding filter. Row order is kept and the source Table is untouched
func Filter(table *Table, month string, day string) (*Table, error) {
	df := table.df

	parsedMonth, ok := trip.ParseMonth(month)
	if !ok {
		return nil, fmt.Errorf("%w: unknown month %q", dataErrors.ErrInvalidSelection, month)
	}

	parsedDay, ok := trip.ParseDay(day)
	if !ok {
		return nil, fmt.Errorf("%w: unknown day %q", dataErrors.ErrInvalidSelection, day)
	}

	if parsedMonth != trip.AllFilter {
		if !table.HasColumn(trip.MonthColumn) {
			return nil, fmt.Errorf("%w: %s, table was not derived", dataErrors.ErrMissingColumn, trip.MonthColumn)
		}

		df = df.Filter(dataframe.F{
			Colname:    trip.MonthColumn,
			Comparator: series.Eq,
			Comparando: trip.MonthIndex(parsedMonth),
		})
		if df.Err != nil {
			return nil, fmt.Errorf("error filtering by month %s: %w", parsedMonth, df.Err)
		}
	}

	if parsedDay != trip.AllFilter {
		if !table.HasColumn(trip.DayOfWeekColumn) {
			return nil, fmt.Errorf("%w: %s, table was not derived", dataErrors.ErrMissingColumn, trip.DayOfWeekColumn)
		}

		df = df.Filter(dataframe.F{
			Colname:    trip.DayOfWeekColumn,
			Comparator: series.Eq,
			Comparando: trip.Title(parsedDay),
		})
		if df.Err != nil {
			return nil, fmt.Errorf("error filtering by day %s: %w", parsedDay, df.Err)
		}
	}

	return table.with(df), nil
}
