package validation

import (
	"github.com/jonathan/harvest-validator/internal/types"
)

// ValidatePhotos reports repeated image identifiers. The first occurrence of
// an identifier is the original and is not reported; every later occurrence
// is.
//
// Unlike the record checks, a nil report is returned when there are no
// duplicates. Callers must treat nil as "no violation".
func (v *Validator) ValidatePhotos() *types.ViolationReport {
	seen := make(map[string]struct{}, len(v.images))
	var duplicates []any

	for _, image := range v.images {
		if _, ok := seen[image]; ok {
			duplicates = append(duplicates, image)
			continue
		}
		seen[image] = struct{}{}
	}

	if len(duplicates) == 0 {
		return nil
	}
	report := types.NewViolationReport(types.RuleDuplicatePhotos, duplicates)
	return &report
}
