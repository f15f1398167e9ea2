// Package pipeline orchestrates a validation run over a data directory.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/harvest-validator/internal/ingestion"
	"github.com/jonathan/harvest-validator/internal/observability"
	"github.com/jonathan/harvest-validator/internal/observability/metrics"
	"github.com/jonathan/harvest-validator/internal/types"
	"github.com/jonathan/harvest-validator/internal/validation"
)

// now is replaced in tests.
var now = time.Now

// Options configures a validation run.
type Options struct {
	DataDirectory string
	Sequential    bool
	Output        io.Writer // console output; nil disables printing
	Logger        zerolog.Logger
	Metrics       *metrics.Metrics // optional
}

// Run scans the data directory, validates every measurement file on its own
// and then checks the pooled photos for duplicates. Only directory-level
// failures are returned as errors; unreadable files and failed checks are
// recorded in the result and the run continues.
func Run(ctx context.Context, opts Options) (*types.RunResult, error) {
	run := &types.RunResult{
		RunID:         uuid.New(),
		DataDirectory: opts.DataDirectory,
		StartedAt:     now().UTC(),
	}
	logger := opts.Logger.With().Str("runId", run.RunID.String()).Logger()

	var printer *observability.Printer
	if opts.Output != nil {
		printer = observability.NewPrinter(opts.Output)
		printer.PrintBanner("Processing farm data start")
	}

	inv, err := ingestion.NewScanner(logger).Scan(opts.DataDirectory)
	if err != nil {
		return nil, err
	}

	for _, path := range inv.MeasurementFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := validateFile(ctx, path, opts, logger)
		run.Files = append(run.Files, result)
		if printer != nil {
			printer.PrintFileResult(result)
		}
	}

	photos := validation.ForImages(inv.Images)
	photoStart := now()
	run.Photos = types.PhotoResult{
		ImageCount: photos.ImageCount(),
		Report:     photos.ValidatePhotos(),
	}
	photoElapsed := now().Sub(photoStart)
	if opts.Metrics != nil {
		opts.Metrics.ImagesChecked.Add(float64(photos.ImageCount()))
		duplicates := 0
		if run.Photos.Report != nil {
			duplicates = len(run.Photos.Report.DataPoint)
		}
		opts.Metrics.ObserveCheck(types.RuleDuplicatePhotos.Code(), duplicates, "", photoElapsed)
	}
	if printer != nil {
		printer.PrintPhotoResult(run.Photos)
	}

	run.FinishedAt = now().UTC()
	if opts.Metrics != nil {
		opts.Metrics.MarkFinished(run.FinishedAt)
	}
	if printer != nil {
		printer.PrintSummary(run)
		printer.PrintBanner("Farm data harvest validation completed")
	}

	logger.Info().
		Int("files", len(run.Files)).
		Int("images", run.Photos.ImageCount).
		Int("violations", run.ViolationCount()).
		Int("errors", run.ErrorCount()).
		Dur("elapsed", run.FinishedAt.Sub(run.StartedAt)).
		Msg("validation run completed")

	return run, nil
}

func validateFile(ctx context.Context, path string, opts Options, logger zerolog.Logger) types.FileResult {
	result := types.FileResult{Path: path}
	fileLog := logger.With().Str("file", path).Logger()

	measurements, err := ingestion.ReadMeasurements(path)
	if err != nil {
		fileLog.Error().Err(err).Msg("failed to read measurement file")
		result.IngestError = err.Error()
		if opts.Metrics != nil {
			opts.Metrics.FilesFailed.Inc()
		}
		return result
	}

	v := validation.ForMeasurements(measurements)
	result.RecordCount = v.MeasurementCount()
	result.Reports = []types.ViolationReport{}
	if opts.Metrics != nil {
		opts.Metrics.FilesProcessed.Inc()
		opts.Metrics.RecordsChecked.Add(float64(result.RecordCount))
	}

	for _, outcome := range v.RunMeasurementChecks(ctx, !opts.Sequential) {
		if outcome.Err != nil {
			kind := validation.ErrorKind(outcome.Err)
			fileLog.Warn().Err(outcome.Err).Str("rule", outcome.Rule.Code()).Str("kind", kind).Msg("check failed")
			result.Errors = append(result.Errors, types.CheckError{
				Rule:    outcome.Rule,
				Kind:    kind,
				Message: outcome.Err.Error(),
			})
			if opts.Metrics != nil {
				opts.Metrics.ObserveCheck(outcome.Rule.Code(), 0, kind, outcome.Duration)
			}
			continue
		}

		result.Reports = append(result.Reports, *outcome.Report)
		if opts.Metrics != nil {
			opts.Metrics.ObserveCheck(outcome.Rule.Code(), len(outcome.Report.DataPoint), "", outcome.Duration)
		}
	}

	fileLog.Debug().
		Int("records", result.RecordCount).
		Int("violations", result.ViolationCount()).
		Int("failed_checks", len(result.Errors)).
		Msg("file validated")

	return result
}
