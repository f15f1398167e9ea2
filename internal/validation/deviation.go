package validation

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/jonathan/harvest-validator/internal/types"
)

// ValidateDryWeightDeviations flags records whose dry weight lies strictly
// outside one population standard deviation of the batch mean. The whole batch
// is treated as one population; it is assumed to hold a single crop.
func (v *Validator) ValidateDryWeightDeviations() (types.ViolationReport, error) {
	if len(v.measurements) == 0 {
		return types.ViolationReport{}, &EmptyInputError{Rule: types.RuleDryWeightSD}
	}

	weights := make([]float64, len(v.measurements))
	for i, m := range v.measurements {
		dry, err := numberField(m, i, types.FieldDryWeight)
		if err != nil {
			return types.ViolationReport{}, err
		}
		weights[i] = dry
	}

	mean, std := populationMeanStdDev(weights)

	var flagged []any
	for i, w := range weights {
		if outsideDeviation(w, mean, std) {
			flagged = append(flagged, v.measurements[i])
		}
	}

	return types.NewViolationReport(types.RuleDryWeightSD, flagged), nil
}

// boundTolerance absorbs the rounding error of mean and std, relative to the
// magnitude of the batch.
const boundTolerance = 1e-9

// outsideDeviation reports whether w lies strictly outside mean ± std. A value
// on the bound, up to rounding, is inside.
func outsideDeviation(w, mean, std float64) bool {
	d := math.Abs(w - mean)
	if d <= std {
		return false
	}
	return d-std > boundTolerance*math.Max(1, math.Max(math.Abs(mean), std))
}

// populationMeanStdDev returns the mean and divide-by-n standard deviation of
// x. Values are shifted by x[0] first so a batch of identical weights yields
// exactly that weight and zero spread.
func populationMeanStdDev(x []float64) (mean, std float64) {
	shift := x[0]
	shifted := make([]float64, len(x))
	for i, value := range x {
		shifted[i] = value - shift
	}
	mean, std = stat.PopMeanStdDev(shifted, nil)
	return mean + shift, std
}
