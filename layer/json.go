package layer

// The rendered document keeps a fixed key order (@@type, id, fields in
// insertion order, data last) so output is deterministic and diffable.
// Field names are emitted exactly as given; only descriptor accessor names
// are case-converted, and that happens at extraction time.

// MarshalJSON renders the layer configuration document.
func (l *Layer) MarshalJSON() ([]byte, error) {
	out := append([]byte{'{'}, '"')
	out = append(out, TypeIdentifier...)
	out = append(out, '"', ':')

	encoded, err := l.jsonCodec.Marshal(l.typeName)
	if err != nil {
		return nil, err
	}
	out = append(out, encoded...)

	out = append(out, `,"id":`...)
	if encoded, err = l.jsonCodec.Marshal(l.id); err != nil {
		return nil, err
	}
	out = append(out, encoded...)

	for name, value := range l.fields.All() {
		key, err := l.jsonCodec.Marshal(name)
		if err != nil {
			return nil, err
		}
		rendered, err := value.MarshalJSON()
		if err != nil {
			return nil, err
		}

		out = append(out, ',')
		out = append(out, key...)
		out = append(out, ':')
		out = append(out, rendered...)
	}

	if l.data != nil {
		rendered, err := l.jsonCodec.Marshal(l.data)
		if err != nil {
			return nil, err
		}
		out = append(out, `,"data":`...)
		out = append(out, rendered...)
	}

	return append(out, '}'), nil
}

// ToJSON renders the layer configuration document as a string.
func (l *Layer) ToJSON() (string, error) {
	data, err := l.MarshalJSON()
	if err != nil {
		return "", err
	}

	return string(data), nil
}
