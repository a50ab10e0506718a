package main

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/statistics"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"io"
)

// Explorer runs the filter cycles: ask filters, load, show raw trips, compute and show stats, restart
type Explorer struct {
	config    *config.ExplorerConfig
	loader    *loader.Loader
	prompter  *Prompter
	publisher Publisher
	out       io.Writer
}

func NewExplorer(explorerConfig *config.ExplorerConfig, prompter *Prompter, publisher Publisher, out io.Writer) *Explorer {
	return &Explorer{
		config: explorerConfig,
		loader: loader.NewLoader(loader.Config{
			DataDir:         explorerConfig.DataDir,
			TimestampLayout: explorerConfig.TimestampLayout,
		}),
		prompter:  prompter,
		publisher: publisher,
		out:       out,
	}
}

func (e *Explorer) getLogMessage(runID string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: explorer][run: %s][status: ERROR] %s: %s", runID, message, err.Error())
	}
	return fmt.Sprintf("[component: explorer][run: %s][status: OK] %s", runID, message)
}

// Run loops until the user does not want to restart or the input is over
func (e *Explorer) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		selection, err := e.prompter.GetFilters()
		if err != nil {
			return ignoreEOF(err)
		}

		runID := uuid.NewString()
		_, err = e.RunCycle(ctx, runID, selection)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			DisplayError(e.out, "Could not explore the selected data", err)
		}

		restart, err := e.prompter.Confirm("\nWould you like to restart? Enter yes or no.\n")
		if err != nil {
			return ignoreEOF(err)
		}

		if !restart {
			return nil
		}
	}
}

// RunCycle loads the selected data and displays raw trips and stats. The table only lives
// during the cycle
func (e *Explorer) RunCycle(ctx context.Context, runID string, selection trip.Selection) (*report.Report, error) {
	log.Info(e.getLogMessage(runID, fmt.Sprintf("starting cycle [%s]", selection), nil))

	table, err := e.loader.Load(selection)
	if err != nil {
		return nil, err
	}

	if table.Len() == 0 {
		return nil, fmt.Errorf("%w: no trips match the selected filters", dataErrors.ErrEmptyResult)
	}

	if err = e.showRawData(table); err != nil {
		return nil, err
	}

	stations, err := e.stationsOf(selection.City)
	if err != nil {
		return nil, err
	}

	summary, err := statistics.NewEngine(runID, stations).Run(table)
	if err != nil {
		return nil, err
	}

	DisplaySummary(e.out, summary)

	cycleReport := report.NewReport(runID, selection, summary)
	if err = e.publisher.Publish(ctx, cycleReport); err != nil {
		// the stats were already displayed, a publishing failure does not abort the cycle
		log.Error(e.getLogMessage(runID, "error publishing report", err))
	}

	return cycleReport, nil
}

// showRawData pages through the raw trips while the user asks for more
func (e *Explorer) showRawData(table *dataset.Table) error {
	pageSize := e.config.RawPageSize
	question := fmt.Sprintf("\nWould you like to see the first %v rows of raw data? Enter yes or no:\n", pageSize)

	for offset := 0; ; offset += pageSize {
		more, err := e.prompter.Confirm(question)
		if err != nil || !more {
			return err
		}

		page, err := table.Page(offset, pageSize)
		if err != nil {
			return err
		}

		if len(page) == 0 {
			_, _ = fmt.Fprintln(e.out, DimStyle.Render("No more rows."))
			return nil
		}

		DisplayTrips(e.out, offset, page)
		question = fmt.Sprintf("\nWould you like to see the next %v rows of raw data? Enter yes or no:\n", pageSize)
	}
}

func (e *Explorer) stationsOf(city string) (station.Directory, error) {
	path, ok := e.config.StationSources[city]
	if !ok {
		return nil, nil
	}
	return e.loader.LoadStations(city, path)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
