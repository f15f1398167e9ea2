package validation

import (
	"github.com/jonathan/harvest-validator/internal/types"
)

// ValidateWeights flags records whose dry weight exceeds the wet weight.
// Equal weights are allowed.
func (v *Validator) ValidateWeights() (types.ViolationReport, error) {
	var flagged []any

	for i, m := range v.measurements {
		wet, err := numberField(m, i, types.FieldWetWeight)
		if err != nil {
			return types.ViolationReport{}, err
		}
		dry, err := numberField(m, i, types.FieldDryWeight)
		if err != nil {
			return types.ViolationReport{}, err
		}

		if dry > wet {
			flagged = append(flagged, m)
		}
	}

	return types.NewViolationReport(types.RuleWetWeight, flagged), nil
}
