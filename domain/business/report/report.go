package report

import (
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
	"bikeshare/statistics"
	"encoding/json"
	"fmt"
)

const (
	reportType = "report"
	stage      = "explorer"
)

// Report contains the result of one filter cycle
// + Metadata: city, run ID and generation instant
// + Selection: filters applied to the city data
// + Summary: statistic groups computed over the filtered trips
type Report struct {
	Metadata  entities.Metadata   `json:"metadata"`
	Selection trip.Selection      `json:"selection"`
	Summary   *statistics.Summary `json:"summary"`
}

func NewReport(runID string, selection trip.Selection, summary *statistics.Summary) *Report {
	return &Report{
		Metadata:  entities.NewMetadata(selection.City, reportType, stage, runID),
		Selection: selection,
		Summary:   summary,
	}
}

func (r *Report) GetMetadata() entities.Metadata {
	return r.Metadata
}

// Marshal returns the report as JSON
func (r *Report) Marshal() ([]byte, error) {
	reportBytes, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("error marshalling report %s: %w", r.Metadata.GetRunID(), err)
	}
	return reportBytes, nil
}
