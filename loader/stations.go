package loader

import (
	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadStations reads a stations CSV with Name, Latitude and Longitude columns.
// Relative paths are resolved against the data directory
func (l *Loader) LoadStations(city string, path string) (station.Directory, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.config.DataDir, path)
	}

	df, err := readCSV(path)
	if err != nil {
		log.Error(l.getLogMessage(city, fmt.Sprintf("error reading stations from %s", path), err))
		return nil, err
	}

	columns := make(map[string][]string)
	for _, column := range []string{station.NameColumn, station.LatitudeColumn, station.LongitudeColumn} {
		values := df.Col(column)
		if values.Err != nil {
			err = fmt.Errorf("%w: %s: column %s not found", dataErrors.ErrInvalidStationData, path, column)
			log.Error(l.getLogMessage(city, "error reading stations", err))
			return nil, err
		}
		columns[column] = values.Records()
	}

	directory := make(station.Directory)
	names := columns[station.NameColumn]
	for idx := range names {
		latitude, err := strconv.ParseFloat(strings.TrimSpace(columns[station.LatitudeColumn][idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %v: invalid latitude %q", dataErrors.ErrInvalidStationData, path, idx+1, columns[station.LatitudeColumn][idx])
		}

		longitude, err := strconv.ParseFloat(strings.TrimSpace(columns[station.LongitudeColumn][idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %v: invalid longitude %q", dataErrors.ErrInvalidStationData, path, idx+1, columns[station.LongitudeColumn][idx])
		}

		directory.Add(station.StationData{
			Name:      strings.TrimSpace(names[idx]),
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	log.Debug(l.getLogMessage(city, fmt.Sprintf("%v stations read from %s", len(directory), path), nil))
	return directory, nil
}
