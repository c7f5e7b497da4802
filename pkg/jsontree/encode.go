package jsontree

import (
	"bytes"
	"encoding/json"
)

// Marshal returns the compact JSON encoding of v. Object keys come out in
// insertion order and HTML characters are not escaped.
func Marshal(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the compact JSON encoding of v, or "null" if it cannot be
// encoded.
func (v *Value) String() string {
	b, err := Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) {
	return Marshal(v)
}

// Stringify renders v for comparison against query arguments and path
// segments: strings as their raw text, numbers as their literal, booleans as
// true/false, null (or a missing value) as "null", and containers as compact
// JSON.
func Stringify(v *Value) string {
	switch v.Kind() {
	case KindString, KindNumber:
		return v.s
	default:
		return v.String()
	}
}

func encode(buf *bytes.Buffer, v *Value) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.s)
	case KindString:
		return encodeString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, key := range v.obj.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encode(buf, v.obj.fields[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
