package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunResult_Counts(t *testing.T) {
	dup := NewViolationReport(RuleDuplicatePhotos, []any{"a.jpg", "a.jpg"})
	run := &RunResult{
		Files: []FileResult{
			{
				Path: "batch1.json",
				Reports: []ViolationReport{
					NewViolationReport(RuleWetWeight, []any{"x"}),
					NewViolationReport(RuleDryWeightSD, nil),
				},
				Errors: []CheckError{{Rule: RuleFarmDistance, Kind: "location_format", Message: "bad"}},
			},
			{Path: "broken.json", IngestError: "error parsing json file"},
		},
		Photos: PhotoResult{ImageCount: 3, Report: &dup},
	}

	assert.Equal(t, 1, run.Files[0].ViolationCount())
	assert.Equal(t, 3, run.ViolationCount())
	assert.Equal(t, 2, run.ErrorCount())
}

func TestRunResult_NoPhotoReport(t *testing.T) {
	run := &RunResult{Photos: PhotoResult{ImageCount: 2}}
	assert.Equal(t, 0, run.ViolationCount())
	assert.Equal(t, 0, run.ErrorCount())
}
