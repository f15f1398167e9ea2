package validation

import (
	"slices"

	"github.com/jonathan/harvest-validator/internal/types"
)

// Validator holds an immutable snapshot of one batch of measurements and/or
// one set of image identifiers. Each check is invoked explicitly and reads the
// snapshot without modifying it, so checks may run in any order or at the
// same time.
type Validator struct {
	measurements types.MeasurementSet
	images       types.ImageSet
}

// New returns a Validator over copies of the given inputs. Either may be nil;
// record checks and the photo check are usually run on separate instances.
func New(measurements types.MeasurementSet, images types.ImageSet) *Validator {
	return &Validator{
		measurements: slices.Clone(measurements),
		images:       slices.Clone(images),
	}
}

// ForMeasurements returns a Validator for record checks only.
func ForMeasurements(measurements types.MeasurementSet) *Validator {
	return New(measurements, nil)
}

// ForImages returns a Validator for the photo check only.
func ForImages(images types.ImageSet) *Validator {
	return New(nil, images)
}

// MeasurementCount returns the number of records in the snapshot.
func (v *Validator) MeasurementCount() int {
	return len(v.measurements)
}

// ImageCount returns the number of image identifiers in the snapshot.
func (v *Validator) ImageCount() int {
	return len(v.images)
}
