package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/harvest-validator/internal/types"
)

func TestPrintFileResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := types.NewMeasurement().
		Set(types.FieldFarmID, 1).
		Set(types.FieldCrop, "corn").
		Set(types.FieldDryWeight, 12)

	p.PrintFileResult(types.FileResult{
		Path:        "data/batch.json",
		RecordCount: 2,
		Reports: []types.ViolationReport{
			types.NewViolationReport(types.RuleWetWeight, []any{record}),
			types.NewViolationReport(types.RuleMultipleMeasurements, nil),
		},
		Errors: []types.CheckError{
			{Rule: types.RuleFarmDistance, Kind: "location_format", Message: "record 1: malformed location"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "HARVEST DATA: data/batch.json")
	assert.Contains(t, output, "Records: 2")
	assert.Contains(t, output, "⚠ wet_weight (1)")
	assert.Contains(t, output, "farm 1 / corn (dry 12)")
	assert.Contains(t, output, "✅ multiple_measurements: no violations")
	assert.Contains(t, output, "✗ farm_distance check failed (location_format)")
}

func TestPrintFileResult_IngestError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFileResult(types.FileResult{Path: "bad.json", IngestError: "error parsing json file bad.json: invalid JSON"})

	assert.Contains(t, buf.String(), "✗ error parsing json file")
	assert.NotContains(t, buf.String(), "Records:")
}

func TestPrintFileResult_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := make([]any, 8)
	for i := range items {
		items[i] = fmt.Sprintf("pair-%d", i)
	}
	p.PrintFileResult(types.FileResult{
		Path:    "big.json",
		Reports: []types.ViolationReport{types.NewViolationReport(types.RuleFarmDistance, items)},
	})

	output := buf.String()
	assert.Contains(t, output, "pair-4")
	assert.NotContains(t, output, "pair-5")
	assert.Contains(t, output, "... and 3 more")
}

func TestPrintPhotoResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPhotoResult(types.PhotoResult{ImageCount: 3})
	assert.Contains(t, buf.String(), "NO DUPLICATE PHOTOS FOUND")

	buf.Reset()
	report := types.NewViolationReport(types.RuleDuplicatePhotos, []any{"a.jpg"})
	p.PrintPhotoResult(types.PhotoResult{ImageCount: 3, Report: &report})
	assert.Contains(t, buf.String(), "⚠ duplicate_photos (1)")
	assert.Contains(t, buf.String(), "• a.jpg")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(nil)
	assert.Empty(t, buf.String())

	id := uuid.New()
	p.PrintSummary(&types.RunResult{
		RunID:         id,
		DataDirectory: "data",
		Files:         []types.FileResult{{Path: "a.json", IngestError: "boom"}},
	})
	assert.Contains(t, buf.String(), "VALIDATION SUMMARY")
	assert.Contains(t, buf.String(), id.String())
	assert.Contains(t, buf.String(), "Errors:     1")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBanner("Processing farm data start")
	assert.Contains(t, buf.String(), "* Processing farm data start *")
}
