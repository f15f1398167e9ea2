package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/harvest-validator/internal/config"
	"github.com/jonathan/harvest-validator/internal/observability/logging"
	"github.com/jonathan/harvest-validator/internal/observability/metrics"
	"github.com/jonathan/harvest-validator/internal/pipeline"
	"github.com/jonathan/harvest-validator/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate harvest submissions in a data directory",
	Long: "Walks a data directory, validates every harvest_measurements JSON file for duplicate measurements, " +
		"wet/dry weight consistency, dry weight deviation and farm proximity, and checks all photos for duplicates.",
	RunE:         runValidate,
	SilenceUsage: true,
}

var (
	validateDataDir     string
	validateConfigPath  string
	validateOut         string
	validateMetricsFile string
	validateLogLevel    string
	validateLogFormat   string
	validateStrict      bool
	validateSequential  bool
	validateQuiet       bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateDataDir, "data-dir", "d", "", "Path to unzipped data directory (required unless set in config)")
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "Path to JSON config file (optional)")
	validateCmd.Flags().StringVarP(&validateOut, "out", "o", "", "Path to write the run result JSON (optional)")
	validateCmd.Flags().StringVar(&validateMetricsFile, "metrics-file", "", "Path to write Prometheus textfile metrics (optional)")
	validateCmd.Flags().StringVar(&validateLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	validateCmd.Flags().StringVar(&validateLogFormat, "log-format", "", "Log format: console or json")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit with an error when violations or failed checks are found")
	validateCmd.Flags().BoolVar(&validateSequential, "sequential", false, "Run record checks one after another")
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Do not print reports to stdout")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		DataDirectory: validateDataDir,
		Out:           validateOut,
		MetricsFile:   validateMetricsFile,
		LogLevel:      validateLogLevel,
		LogFormat:     validateLogFormat,
		Strict:        validateStrict,
		Sequential:    validateSequential,
	}, validateConfigPath, os.Getenv, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	var stdout io.Writer = cmd.OutOrStdout()
	if validateQuiet {
		stdout = nil
	}
	return executeValidate(cmd.Context(), cfg, stdout)
}

// resolveConfig layers flags over environment over config file over defaults.
// Boolean flags only take part when changed reports them as set, so an
// explicit --strict=false still overrides the config file.
func resolveConfig(flags config.Config, configPath string, getenv func(string) string, changed func(string) bool) (config.Config, error) {
	base := config.Config{}
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		base = *fileCfg
	}
	if err := base.ApplyEnv(getenv); err != nil {
		return config.Config{}, err
	}

	cfg := flags.MergeWithDefaults(base)
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if changed("strict") {
		cfg.Strict = flags.Strict
	}
	if changed("sequential") {
		cfg.Sequential = flags.Sequential
	}

	if cfg.DataDirectory == "" {
		return config.Config{}, errors.New(`required flag(s) "data-dir" not set`)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func executeValidate(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logging.Init(logCfg)
	logger := logging.WithComponent("cli")

	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.NewMetrics()
	}

	run, err := pipeline.Run(ctx, pipeline.Options{
		DataDirectory: cfg.DataDirectory,
		Sequential:    cfg.Sequential,
		Output:        stdout,
		Logger:        logging.WithComponent("pipeline"),
		Metrics:       m,
	})
	if err != nil {
		return fmt.Errorf("validation run failed: %w", err)
	}

	if cfg.Out != "" {
		jsonBytes, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal run result to JSON: %w", err)
		}

		// Validate output against schema (non-fatal)
		if err := schemas.ValidateRunResult(jsonBytes); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				logger.Warn().Err(err).Msg("generated run result does not validate against schema")
			} else {
				logger.Warn().Err(err).Msg("could not validate run result against schema")
			}
		}

		if err := writeRunResult(cfg.Out, jsonBytes); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Out).Msg("run result written")
	}

	if m != nil {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics file: %w", err)
		}
	}

	if cfg.Strict && (run.ViolationCount() > 0 || run.ErrorCount() > 0) {
		return fmt.Errorf("validation found %d violation(s) and %d error(s)", run.ViolationCount(), run.ErrorCount())
	}
	return nil
}

func writeRunResult(path string, jsonBytes []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write run result to output file: %w", err)
	}
	return nil
}
