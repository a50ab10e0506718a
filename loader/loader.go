package loader

import (
	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path/filepath"
	"time"
)

const component = "loader"

// Config parameters used by the Loader
// + DataDir: directory that contains the city CSV files
// + TimestampLayout: layout of the Start Time values
type Config struct {
	DataDir         string
	TimestampLayout string
}

type Loader struct {
	config Config
}

func NewLoader(config Config) *Loader {
	if config.TimestampLayout == "" {
		config.TimestampLayout = trip.TimestampLayout
	}
	return &Loader{
		config: config,
	}
}

func (l *Loader) getLogMessage(city string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][city: %s][status: ERROR] %s: %s", component, city, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][city: %s][status: OK] %s", component, city, message)
}

// Load reads the whole trip data of the selected city and returns the trips that match the
// selected month and day. The table is read from disk on every call. An unmapped city is a
// configuration error, an invalid month or day an invalid selection
func (l *Loader) Load(selection trip.Selection) (*dataset.Table, error) {
	if _, ok := trip.SourceFile(selection.City); !ok {
		err := fmt.Errorf("%w: city %q has no data source", dataErrors.ErrConfiguration, selection.City)
		log.Error(l.getLogMessage(selection.City, "error resolving data source", err))
		return nil, err
	}

	if err := selection.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	table, err := l.LoadCity(selection.City)
	if err != nil {
		return nil, err
	}

	filtered, err := dataset.Filter(table, selection.Month, selection.Day)
	if err != nil {
		log.Error(l.getLogMessage(selection.City, "error filtering trips", err))
		return nil, err
	}

	message := fmt.Sprintf("%v of %v trips match [month: %s][day: %s], took %s", filtered.Len(), table.Len(), selection.Month, selection.Day, time.Since(start))
	log.Info(l.getLogMessage(selection.City, message, nil))
	return filtered, nil
}

// LoadCity reads every trip of a city and derives the month and day_of_week columns
func (l *Loader) LoadCity(city string) (*dataset.Table, error) {
	filename, ok := trip.SourceFile(city)
	if !ok {
		err := fmt.Errorf("%w: city %q has no data source", dataErrors.ErrConfiguration, city)
		log.Error(l.getLogMessage(city, "error resolving data source", err))
		return nil, err
	}

	path := filepath.Join(l.config.DataDir, filename)
	df, err := readCSV(path)
	if err != nil {
		log.Error(l.getLogMessage(city, fmt.Sprintf("error reading %s", path), err))
		return nil, err
	}

	table := dataset.NewTable(city, df, l.config.TimestampLayout)
	if !table.HasColumn(trip.StartTimeColumn) {
		err = fmt.Errorf("%w: %s has no %s column", dataErrors.ErrDataFormat, path, trip.StartTimeColumn)
		log.Error(l.getLogMessage(city, "error validating columns", err))
		return nil, err
	}

	table, err = dataset.Derive(city, df, l.config.TimestampLayout)
	if err != nil {
		log.Error(l.getLogMessage(city, "error deriving temporal columns", err))
		return nil, err
	}

	log.Debug(l.getLogMessage(city, fmt.Sprintf("%v trips read from %s", table.Len(), path), nil))
	return table, nil
}

// readCSV loads every column as string, typed parsing is done by the consumers of each column
func readCSV(path string) (dataframe.DataFrame, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", dataErrors.ErrSourceUnavailable, err.Error())
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", path, err.Error())
		}
	}(dataFile)

	return parseCSV(dataFile, path)
}

func parseCSV(reader io.Reader, path string) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(
		reader,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: error parsing %s: %s", dataErrors.ErrDataFormat, path, df.Err.Error())
	}
	return df, nil
}
