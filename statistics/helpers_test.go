package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"strings"
	"testing"
)

const scenarioCSV = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
2017-01-02 09:07:57,2017-01-02 09:09:37,100,S1,S2,Subscriber,Male,1989.0
2017-01-02 09:30:00,2017-01-02 09:33:20,200,S1,S2,Customer,,
2017-02-07 17:00:00,2017-02-07 17:00:50,50,S3,S4,Subscriber,Female,1975.0
`

func newTable(t *testing.T, csv string) *dataset.Table {
	t.Helper()

	df := dataframe.ReadCSV(
		strings.NewReader(csv),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		t.Fatalf("error reading test CSV: %v", df.Err)
	}

	table, err := dataset.Derive("chicago", df, trip.TimestampLayout)
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}
	return table
}

func filter(t *testing.T, table *dataset.Table, month string, day string) *dataset.Table {
	t.Helper()

	filtered, err := dataset.Filter(table, month, day)
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	return filtered
}
