package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/jonathan/harvest-validator/internal/types"
)

// MeasurementsKey is the top-level key holding the records of a file.
const MeasurementsKey = "harvest_measurements"

// ReadMeasurements loads the harvest_measurements array of a JSON file.
func ReadMeasurements(path string) (types.MeasurementSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &JSONError{Path: path, Message: "failed to read file", Cause: err}
	}
	return ParseMeasurements(path, data)
}

// ParseMeasurements decodes the harvest_measurements array from data. path is
// used for error messages only.
func ParseMeasurements(path string, data []byte) (types.MeasurementSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, &JSONError{Path: path, Message: "invalid JSON"}
	}

	result := gjson.GetBytes(data, MeasurementsKey)
	if !result.Exists() {
		return nil, &JSONError{Path: path, Message: fmt.Sprintf("missing %q key", MeasurementsKey)}
	}
	if !result.IsArray() {
		return nil, &JSONError{Path: path, Message: fmt.Sprintf("%q is not an array", MeasurementsKey)}
	}

	set := types.MeasurementSet{}
	var decodeErr error
	result.ForEach(func(_, value gjson.Result) bool {
		index := len(set)
		if !value.IsObject() {
			decodeErr = &JSONError{Path: path, Message: fmt.Sprintf("measurement %d is not an object", index)}
			return false
		}

		m := types.NewMeasurement()
		if err := json.Unmarshal([]byte(value.Raw), m); err != nil {
			decodeErr = &JSONError{Path: path, Message: fmt.Sprintf("measurement %d", index), Cause: err}
			return false
		}
		set = append(set, m)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return set, nil
}
