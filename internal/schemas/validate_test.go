package schemas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/harvest-validator/internal/types"
)

func sampleRun() *types.RunResult {
	record := types.NewMeasurement().
		Set(types.FieldFarmID, 1).
		Set(types.FieldCrop, "corn").
		Set(types.FieldWetWeight, 10).
		Set(types.FieldDryWeight, 12).
		Set(types.FieldLocation, "0, 0")

	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &types.RunResult{
		RunID:         uuid.New(),
		DataDirectory: "data",
		StartedAt:     started,
		FinishedAt:    started.Add(time.Second),
		Files: []types.FileResult{
			{
				Path:        "data/batch.json",
				RecordCount: 1,
				Reports: []types.ViolationReport{
					types.NewViolationReport(types.RuleWetWeight, []any{record}),
					types.NewViolationReport(types.RuleFarmDistance, nil),
				},
				Errors: []types.CheckError{
					{Rule: types.RuleDryWeightSD, Kind: "empty_input", Message: "no records"},
				},
			},
			{Path: "data/broken.json", IngestError: "error parsing json file"},
		},
		Photos: types.PhotoResult{ImageCount: 2},
	}
}

func TestValidateRunResult_Valid(t *testing.T) {
	data, err := json.Marshal(sampleRun())
	require.NoError(t, err)
	assert.NoError(t, ValidateRunResult(data))
}

func TestValidateRunResult_WithPhotoReport(t *testing.T) {
	run := sampleRun()
	report := types.NewViolationReport(types.RuleDuplicatePhotos, []any{"a.jpg"})
	run.Photos.Report = &report

	data, err := json.Marshal(run)
	require.NoError(t, err)
	assert.NoError(t, ValidateRunResult(data))
}

func TestValidateRunResult_Invalid(t *testing.T) {
	err := ValidateRunResult([]byte(`{"run_id": "not-a-uuid", "files": [], "photos": {"image_count": -1, "report": null}}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 1)
	assert.Contains(t, err.Error(), "run_id")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "corn"}`))

	err := ValidateJSONString(schema, `{"name": 5}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Errors[0].Field)

	err = ValidateJSONString(schema, `{not json`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "(root)", Message: "run_id is required"},
		{Field: "photos.image_count", Message: "Must be greater than or equal to 0"},
	}}
	assert.Equal(t, "validation failed:\n  1. (root): run_id is required\n  2. photos.image_count: Must be greater than or equal to 0\n", err.Error())
}
