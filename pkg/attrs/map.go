package attrs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Attr is a single key/value entry.
type Attr struct {
	Key   string
	Value any
}

// Map is the ordered attribute record handed to Apply. Keys are expected to
// be unique; order decides how $-bindings merge.
type Map []Attr

// Pairs is an ordered name→value mapping used for class and style values.
type Pairs []Attr

// Get returns the value stored under key.
func (m Map) Get(key string) (any, bool) {
	for _, a := range m {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, a := range m {
		keys[i] = a.Key
	}
	return keys
}

// MarshalJSON encodes m as a JSON object, preserving order.
func (m Map) MarshalJSON() ([]byte, error) {
	return marshalOrdered(m)
}

// UnmarshalJSON decodes a JSON object, preserving key order. Nested objects
// become Pairs, arrays become []any and numbers json.Number.
func (m *Map) UnmarshalJSON(data []byte) error {
	p, err := decodeObject(data)
	if err != nil {
		return err
	}
	*m = Map(p)
	return nil
}

// MarshalJSON encodes p as a JSON object, preserving order.
func (p Pairs) MarshalJSON() ([]byte, error) {
	return marshalOrdered(p)
}

// UnmarshalJSON decodes a JSON object, preserving key order.
func (p *Pairs) UnmarshalJSON(data []byte) error {
	v, err := decodeObject(data)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func marshalOrdered(entries []Attr) ([]byte, error) {
	if entries == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(a.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeObject(data []byte) (Pairs, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("attrs: decode: %w", err)
	}
	if v == nil {
		return nil, nil
	}
	p, ok := v.(Pairs)
	if !ok {
		return nil, fmt.Errorf("attrs: decode: expected JSON object, got %T", v)
	}
	return p, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		p := Pairs{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := kt.(string)
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			p = append(p, Attr{Key: key, Value: val})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return p, nil
	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}
