package report

import (
	"bikeshare/domain/entities/trip"
	"bikeshare/statistics"
	"encoding/json"
	"testing"
)

func TestReportMarshal(t *testing.T) {
	selection := trip.Selection{City: "chicago", Month: "january", Day: trip.AllFilter}
	summary := &statistics.Summary{
		Trips:    2,
		Duration: &statistics.DurationStats{Trips: 2, TotalDuration: 300, MeanDuration: 150},
	}

	cycleReport := NewReport("run-1", selection, summary)
	reportBytes, err := cycleReport.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(reportBytes, &decoded); err != nil {
		t.Fatalf("error decoding report: %v", err)
	}

	if decoded.Metadata.RunID != "run-1" || decoded.Metadata.City != "chicago" || decoded.Metadata.Stage != stage {
		t.Errorf("unexpected metadata %+v", decoded.Metadata)
	}
	if decoded.Selection != selection {
		t.Errorf("Selection = %+v, want %+v", decoded.Selection, selection)
	}
	if decoded.Summary.Duration.TotalDuration != 300 || decoded.Summary.Time != nil {
		t.Errorf("unexpected summary %+v", decoded.Summary)
	}
}
