package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrTrailingData is returned by Parse when input continues after the first value.
var ErrTrailingData = errors.New("jsontree: trailing data after JSON value")

// Parse decodes a single JSON document. Numbers keep their literal text and
// objects keep the order of their keys. A repeated key keeps its first
// position and its last value.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

// ParseString is Parse for string input.
func ParseString(s string) (*Value, error) {
	return Parse([]byte(s))
}

// MustParse is like ParseString but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *Value {
	v, err := ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("jsontree: MustParse(%q): %v", s, err))
	}
	return v
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
		return nil, fmt.Errorf("jsontree: unexpected delimiter %q", t)
	default:
		return nil, fmt.Errorf("jsontree: unexpected token %T", tok)
	}
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	arr := Array()
	for dec.More() {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(elem)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := Object()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("jsontree: object key is %T, not string", tok)
		}
		field, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, field)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}
