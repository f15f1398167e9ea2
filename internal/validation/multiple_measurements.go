package validation

import (
	"github.com/jonathan/harvest-validator/internal/types"
)

// ValidateMultipleMeasurements flags every record whose (farm_id, crop) pair
// occurs more than once in the batch. All records of an over-populated group
// are reported, groups in the order they were first seen.
func (v *Validator) ValidateMultipleMeasurements() (types.ViolationReport, error) {
	type group struct {
		members []int
	}

	groups := make(map[string]*group)
	var order []string

	for i, m := range v.measurements {
		farmID, err := requireField(m, i, types.FieldFarmID)
		if err != nil {
			return types.ViolationReport{}, err
		}
		crop, err := requireField(m, i, types.FieldCrop)
		if err != nil {
			return types.ViolationReport{}, err
		}

		key := identityKey(farmID) + "\x00" + identityKey(crop)
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, i)
	}

	var flagged []any
	for _, key := range order {
		g := groups[key]
		if len(g.members) < 2 {
			continue
		}
		for _, i := range g.members {
			flagged = append(flagged, v.measurements[i])
		}
	}

	return types.NewViolationReport(types.RuleMultipleMeasurements, flagged), nil
}
