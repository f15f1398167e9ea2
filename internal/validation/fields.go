package validation

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jonathan/harvest-validator/internal/types"
)

func requireField(m *types.Measurement, index int, field string) (any, error) {
	value, ok := m.Get(field)
	if !ok || value == nil {
		return nil, &MissingFieldError{Index: index, Field: field}
	}
	return value, nil
}

// numberField reads a numeric field. Decoded JSON yields float64 or
// json.Number; records built in code may carry plain ints.
func numberField(m *types.Measurement, index int, field string) (float64, error) {
	value, err := requireField(m, index, field)
	if err != nil {
		return 0, err
	}

	f, ok := toFloat(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &FieldTypeError{Index: index, Field: field, Value: value}
	}
	return f, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// identityKey turns an identifier value into a comparable key. The dynamic
// type is part of the key so 1 and "1" stay distinct farms.
func identityKey(value any) string {
	if f, ok := toFloat(value); ok {
		return fmt.Sprintf("n:%v", f)
	}
	return fmt.Sprintf("%T:%v", value, value)
}
