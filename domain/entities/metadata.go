package entities

import "time"

// Metadata this struct will contain extra information about the data that leaves the explorer
// + City: city which belongs the data
// + Type: this field helps consumers to recognize what type of data is
// + Stage: component that built the Metadata
// + RunID: identifier of the filter cycle that produced the data
// + GeneratedAt: UTC instant in which the Metadata was constructed
type Metadata struct {
	City        string    `json:"city"`
	Type        string    `json:"type"`
	Stage       string    `json:"stage"`
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

func NewMetadata(city string, dataType string, stage string, runID string) Metadata {
	return Metadata{
		City:        city,
		Type:        dataType,
		Stage:       stage,
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
	}
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetRunID() string {
	return m.RunID
}
