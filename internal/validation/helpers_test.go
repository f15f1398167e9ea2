package validation

import (
	"github.com/jonathan/harvest-validator/internal/types"
)

func record(farmID any, crop string, wet, dry float64, location string) *types.Measurement {
	return types.NewMeasurement().
		Set(types.FieldFarmID, farmID).
		Set(types.FieldCrop, crop).
		Set(types.FieldWetWeight, wet).
		Set(types.FieldDryWeight, dry).
		Set(types.FieldLocation, location)
}

func withDry(dry ...float64) types.MeasurementSet {
	set := make(types.MeasurementSet, len(dry))
	for i, d := range dry {
		set[i] = record(i+1, "corn", 100, d, "0, 0")
	}
	return set
}
