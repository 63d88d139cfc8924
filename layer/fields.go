package layer

import "iter"

// FieldMap is the layer's ordered field mapping: field name to encoded
// value, iterated in insertion order.
//
// It also retains each field's raw pre-encoding value, which binary
// extraction needs to invert accessor bindings (the raw string is the
// column name the accessor refers to; the encoded form carries the
// function prefix and can no longer be matched against columns).
type FieldMap struct {
	keys    []string
	encoded map[string]EncodedValue
	raw     map[string]any
}

// NewFieldMap creates an empty field mapping.
func NewFieldMap() *FieldMap {
	return &FieldMap{
		encoded: make(map[string]EncodedValue),
		raw:     make(map[string]any),
	}
}

// Set encodes value and stores it under name, appending the name to the
// iteration order if it is new.
func (m *FieldMap) Set(name string, value any) {
	if _, exists := m.encoded[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.encoded[name] = Encode(value)
	m.raw[name] = value
}

// Get returns the encoded value stored under name.
func (m *FieldMap) Get(name string) (EncodedValue, bool) {
	v, ok := m.encoded[name]
	return v, ok
}

// Raw returns the original pre-encoding value stored under name.
func (m *FieldMap) Raw(name string) (any, bool) {
	v, ok := m.raw[name]
	return v, ok
}

// Delete removes name from the mapping and the iteration order.
func (m *FieldMap) Delete(name string) bool {
	if _, ok := m.encoded[name]; !ok {
		return false
	}

	delete(m.encoded, name)
	delete(m.raw, name)
	for i, k := range m.keys {
		if k == name {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}

	return true
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	return len(m.keys)
}

// Keys returns the field names in insertion order.
// The returned slice is a copy.
func (m *FieldMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)

	return keys
}

// All returns an iterator over field names and encoded values in
// insertion order.
func (m *FieldMap) All() iter.Seq2[string, EncodedValue] {
	return func(yield func(string, EncodedValue) bool) {
		for _, name := range m.keys {
			if !yield(name, m.encoded[name]) {
				return
			}
		}
	}
}
