package validation

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/harvest-validator/internal/types"
)

func TestValidateDryWeightDeviations_FlagsOutliers(t *testing.T) {
	// mean 5, population std 2: bounds [3, 7]
	set := withDry(2, 4, 4, 4, 5, 5, 7, 9)
	report, err := ForMeasurements(set).ValidateDryWeightDeviations()
	require.NoError(t, err)

	assert.Equal(t, types.RuleDryWeightSD, report.Rule)
	assert.Equal(t, []any{set[0], set[7]}, report.DataPoint)
}

func TestValidateDryWeightDeviations_BoundsInclusive(t *testing.T) {
	// mean 5, population std 1: 4 and 6 sit exactly on the bounds
	set := withDry(4, 6)
	report, err := ForMeasurements(set).ValidateDryWeightDeviations()
	require.NoError(t, err)
	assert.Empty(t, report.DataPoint)
}

func TestValidateDryWeightDeviations_TwoValuesOnBounds(t *testing.T) {
	// Any two values sit exactly one population SD from their mean.
	pairs := [][2]float64{
		{318.47, 840.59},
		{20.81, 413.18},
		{0.1, 0.2},
		{1e6 + 0.01, 3.33},
	}
	for _, pair := range pairs {
		for _, set := range []types.MeasurementSet{
			withDry(pair[0], pair[1]),
			withDry(pair[1], pair[0]),
			withDry(pair[0], pair[1], pair[0], pair[1]),
		} {
			report, err := ForMeasurements(set).ValidateDryWeightDeviations()
			require.NoError(t, err)
			assert.Empty(t, report.DataPoint, "pair %v", pair)
		}
	}
}

func TestValidateDryWeightDeviations_RandomTwoValueBatches(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 20000; i++ {
		a := float64(rng.IntN(100000)) / 100
		b := float64(rng.IntN(100000)) / 100
		report, err := ForMeasurements(withDry(a, b)).ValidateDryWeightDeviations()
		require.NoError(t, err)
		if !assert.Empty(t, report.DataPoint, "dry weights %v, %v", a, b) {
			return
		}
	}
}

func TestValidateDryWeightDeviations_FlagsSmallSpreadOutlier(t *testing.T) {
	// mean 1000.000001, std 2e-6: the last value is 4e-6 from the mean.
	set := withDry(1000, 1000, 1000, 1000, 1000.000005)
	report, err := ForMeasurements(set).ValidateDryWeightDeviations()
	require.NoError(t, err)
	assert.Equal(t, []any{set[4]}, report.DataPoint)
}

func TestOutsideDeviation(t *testing.T) {
	assert.False(t, outsideDeviation(7, 5, 2))
	assert.False(t, outsideDeviation(7+1e-13, 5, 2))
	assert.False(t, outsideDeviation(3-1e-13, 5, 2))
	assert.True(t, outsideDeviation(7.01, 5, 2))
	assert.True(t, outsideDeviation(2.99, 5, 2))
	assert.False(t, outsideDeviation(0.1, 0.1, 0))
	assert.True(t, outsideDeviation(0.2, 0.1, 0))
}

func TestValidateDryWeightDeviations_IdenticalValues(t *testing.T) {
	for _, value := range []float64{0.1, 3, 1234.5678, 1e-9} {
		report, err := ForMeasurements(withDry(value, value, value, value, value, value, value)).ValidateDryWeightDeviations()
		require.NoError(t, err)
		assert.Empty(t, report.DataPoint, "value %v", value)
	}
}

func TestValidateDryWeightDeviations_Singleton(t *testing.T) {
	report, err := ForMeasurements(withDry(0.3)).ValidateDryWeightDeviations()
	require.NoError(t, err)
	assert.Empty(t, report.DataPoint)
}

func TestValidateDryWeightDeviations_Empty(t *testing.T) {
	_, err := ForMeasurements(nil).ValidateDryWeightDeviations()

	var empty *EmptyInputError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, types.RuleDryWeightSD, empty.Rule)
	assert.Equal(t, "empty_input", ErrorKind(err))
}

func TestValidateDryWeightDeviations_MissingDryWeight(t *testing.T) {
	set := withDry(1, 2)
	set = append(set, types.NewMeasurement().Set(types.FieldFarmID, 9))
	_, err := ForMeasurements(set).ValidateDryWeightDeviations()

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 2, missing.Index)
}

func TestPopulationMeanStdDev(t *testing.T) {
	mean, std := populationMeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-12)
	assert.InDelta(t, 2.0, std, 1e-12)

	mean, std = populationMeanStdDev([]float64{1, 2})
	assert.InDelta(t, 1.5, mean, 1e-12)
	assert.InDelta(t, 0.5, std, 1e-12)

	mean, std = populationMeanStdDev([]float64{0.1, 0.1, 0.1})
	assert.Equal(t, 0.1, mean)
	assert.Equal(t, 0.0, std)
	assert.False(t, math.IsNaN(std))
}
