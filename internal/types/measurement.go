// Package types provides type definitions for structured data used throughout the harvest-validator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field names every harvest measurement is expected to carry.
const (
	FieldFarmID    = "farm_id"
	FieldCrop      = "crop"
	FieldWetWeight = "wet_weight"
	FieldDryWeight = "dry_weight"
	FieldLocation  = "location"
)

// Measurement is one submitted harvest record. It is an open mapping: the
// well-known fields are read by the checks, every other field is carried
// along untouched and in its original order so a record can be echoed back
// verbatim inside a violation report.
type Measurement struct {
	fields *orderedmap.OrderedMap[string, any]
}

// NewMeasurement returns an empty record.
func NewMeasurement() *Measurement {
	return &Measurement{fields: orderedmap.New[string, any]()}
}

// Set stores a field, keeping the position of an existing key. It returns the
// record so fixtures can be built in one expression.
func (m *Measurement) Set(key string, value any) *Measurement {
	m.ensure()
	m.fields.Set(key, value)
	return m
}

// Get returns the raw value of a field and whether it was present.
func (m *Measurement) Get(key string) (any, bool) {
	if m == nil || m.fields == nil {
		return nil, false
	}
	return m.fields.Get(key)
}

// Keys returns the field names in insertion order.
func (m *Measurement) Keys() []string {
	if m == nil || m.fields == nil {
		return nil
	}
	keys := make([]string, 0, m.fields.Len())
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of fields in the record.
func (m *Measurement) Len() int {
	if m == nil || m.fields == nil {
		return 0
	}
	return m.fields.Len()
}

// MarshalJSON encodes the record with its fields in original order.
func (m *Measurement) MarshalJSON() ([]byte, error) {
	if m == nil || m.fields == nil {
		return []byte("{}"), nil
	}
	return m.fields.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, preserving key order.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	m.fields = orderedmap.New[string, any]()
	return m.fields.UnmarshalJSON(data)
}

func (m *Measurement) ensure() {
	if m.fields == nil {
		m.fields = orderedmap.New[string, any]()
	}
}

// MeasurementSet is the ordered batch of records taken from one input file.
type MeasurementSet []*Measurement

// ImageSet is the ordered list of submitted photo identifiers.
type ImageSet []string
