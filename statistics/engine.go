package statistics

import (
	"bikeshare/dataset"
	"bikeshare/domain/entities/station"
	"fmt"
	log "github.com/sirupsen/logrus"
)

const component = "statistics"

// Engine computes every statistic group over a filtered table. Groups are independent and
// read only, the first failing group aborts the run
type Engine struct {
	runID    string
	stations station.Directory
}

// NewEngine stations may be nil, in that case distance stats are reported as not available
func NewEngine(runID string, stations station.Directory) *Engine {
	return &Engine{
		runID:    runID,
		stations: stations,
	}
}

func (e *Engine) getLogMessage(group string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][run: %s][group: %s][status: ERROR] %s: %s", component, e.runID, group, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][run: %s][group: %s][status: OK] %s", component, e.runID, group, message)
}

func (e *Engine) Run(table *dataset.Table) (*Summary, error) {
	summary := &Summary{Trips: table.Len()}
	var err error

	if summary.Time, err = ComputeTimeStats(table); err != nil {
		log.Error(e.getLogMessage("time", "error computing stats", err))
		return nil, fmt.Errorf("time stats: %w", err)
	}
	log.Debug(e.getLogMessage("time", fmt.Sprintf("took %s", summary.Time.Elapsed), nil))

	if summary.Station, err = ComputeStationStats(table); err != nil {
		log.Error(e.getLogMessage("station", "error computing stats", err))
		return nil, fmt.Errorf("station stats: %w", err)
	}
	log.Debug(e.getLogMessage("station", fmt.Sprintf("took %s", summary.Station.Elapsed), nil))

	if summary.Duration, err = ComputeDurationStats(table); err != nil {
		log.Error(e.getLogMessage("duration", "error computing stats", err))
		return nil, fmt.Errorf("trip duration stats: %w", err)
	}
	log.Debug(e.getLogMessage("duration", fmt.Sprintf("took %s", summary.Duration.Elapsed), nil))

	if summary.User, err = ComputeUserStats(table); err != nil {
		log.Error(e.getLogMessage("user", "error computing stats", err))
		return nil, fmt.Errorf("user stats: %w", err)
	}
	log.Debug(e.getLogMessage("user", fmt.Sprintf("took %s", summary.User.Elapsed), nil))

	if summary.Distance, err = ComputeDistanceStats(table, e.stations); err != nil {
		log.Error(e.getLogMessage("distance", "error computing stats", err))
		return nil, fmt.Errorf("distance stats: %w", err)
	}
	log.Debug(e.getLogMessage("distance", fmt.Sprintf("took %s", summary.Distance.Elapsed), nil))

	log.Info(e.getLogMessage("all", fmt.Sprintf("stats computed over %v trips", summary.Trips), nil))
	return summary, nil
}
