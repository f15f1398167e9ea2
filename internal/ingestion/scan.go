package ingestion

import (
	"github.com/rs/zerolog"

	"github.com/jonathan/harvest-validator/internal/types"
)

// Inventory is what a data directory holds: the measurement files to validate
// one by one and the photos, pooled across the whole directory.
type Inventory struct {
	Root             string
	MeasurementFiles []string
	Images           types.ImageSet
	Skipped          []string
}

// Scanner builds an Inventory from a data directory.
type Scanner struct {
	log zerolog.Logger
}

// NewScanner returns a Scanner that logs to logger.
func NewScanner(logger zerolog.Logger) *Scanner {
	return &Scanner{log: logger}
}

// Scan walks root and sorts its files into measurement files and image
// identifiers. Files with other extensions are recorded as skipped.
func (s *Scanner) Scan(root string) (*Inventory, error) {
	files, skipped, err := ListFiles(root)
	if err != nil {
		return nil, err
	}

	inv := &Inventory{Root: root, Skipped: skipped}
	for _, path := range skipped {
		s.log.Debug().Str("path", path).Msg("skipping file with unsupported extension")
	}

	for _, path := range files {
		if IsMeasurementFile(path) {
			inv.MeasurementFiles = append(inv.MeasurementFiles, path)
			continue
		}
		id, err := ImageIdentifier(path)
		if err != nil {
			s.log.Warn().Err(err).Msg("image rejected")
			continue
		}
		inv.Images = append(inv.Images, id)
	}

	s.log.Info().
		Str("root", root).
		Int("measurement_files", len(inv.MeasurementFiles)).
		Int("images", len(inv.Images)).
		Int("skipped", len(skipped)).
		Msg("data directory scanned")

	return inv, nil
}
