package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/harvest-validator/internal/types"
)

func TestValidatePhotos_ReportsLaterOccurrences(t *testing.T) {
	v := ForImages(types.ImageSet{"a.jpg", "b.jpg", "a.jpg", "c.jpg", "a.jpg"})
	report := v.ValidatePhotos()

	require.NotNil(t, report)
	assert.Equal(t, types.RuleDuplicatePhotos, report.Rule)
	assert.Equal(t, "Photo submitted is a duplicate of another photo that was submitted", report.ViolatedRule)
	assert.Equal(t, []any{"a.jpg", "a.jpg"}, report.DataPoint)
}

func TestValidatePhotos_SeveralDuplicates(t *testing.T) {
	report := ForImages(types.ImageSet{"x.png", "y.png", "y.png", "x.png", "z.png"}).ValidatePhotos()
	require.NotNil(t, report)
	assert.Equal(t, []any{"y.png", "x.png"}, report.DataPoint)
}

func TestValidatePhotos_NoDuplicatesReturnsNil(t *testing.T) {
	assert.Nil(t, ForImages(types.ImageSet{"a.jpg", "b.jpg", "A.jpg"}).ValidatePhotos())
	assert.Nil(t, ForImages(nil).ValidatePhotos())
}

func TestValidator_SnapshotIsolation(t *testing.T) {
	images := types.ImageSet{"a.jpg", "b.jpg"}
	v := ForImages(images)
	images[1] = "a.jpg"

	assert.Nil(t, v.ValidatePhotos())
	assert.Equal(t, 2, v.ImageCount())
	assert.Equal(t, 0, v.MeasurementCount())
}
