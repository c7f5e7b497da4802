package jsontree

import "encoding/json"

// Kind is the type of JSON value held by a Value.
type Kind uint8

// JSON value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a mutable JSON value.
//
// The zero value is JSON null. Arrays and objects hold their children by
// pointer, so a *Value obtained by walking the tree stays valid for in-place
// edits until it is removed from its parent.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents, or the literal text of a number
	arr  []*Value
	obj  *object
}

// object keeps keys in insertion order for serialization.
type object struct {
	keys   []string
	fields map[string]*Value
}

// Null returns a new JSON null.
func Null() *Value { return &Value{} }

// Bool returns a new JSON boolean.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// String returns a new JSON string.
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// Number returns a new JSON number holding the literal n.
func Number(n json.Number) *Value { return &Value{kind: KindNumber, s: n.String()} }

// Array returns a new JSON array holding elems.
func Array(elems ...*Value) *Value {
	arr := make([]*Value, 0, len(elems))
	arr = append(arr, elems...)
	return &Value{kind: KindArray, arr: arr}
}

// Object returns a new, empty JSON object.
func Object() *Value {
	return &Value{kind: KindObject, obj: &object{fields: make(map[string]*Value)}}
}

// Kind returns the kind of v. A nil *Value is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is JSON null.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// IsArray reports whether v is a JSON array.
func (v *Value) IsArray() bool { return v.Kind() == KindArray }

// IsObject reports whether v is a JSON object.
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

// BoolValue returns the boolean held by v, or false.
func (v *Value) BoolValue() bool { return v.Kind() == KindBool && v.b }

// Text returns the string contents of a string value or the literal of a
// number. It returns "" for every other kind.
func (v *Value) Text() string {
	switch v.Kind() {
	case KindString, KindNumber:
		return v.s
	default:
		return ""
	}
}

// Len returns the number of elements of an array or fields of an object.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj.keys)
	default:
		return 0
	}
}

// Elements returns the elements of an array. The slice is shared with v;
// use Append, RemoveAt and SetElements to change its length.
func (v *Value) Elements() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.arr
}

// Index returns the i-th array element, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if v.Kind() != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return v.arr[i]
}

// Append adds elem to the end of an array. It is a no-op for other kinds.
func (v *Value) Append(elem *Value) {
	if v.Kind() != KindArray {
		return
	}
	v.arr = append(v.arr, elem)
}

// RemoveAt deletes the i-th array element, shifting later ones down.
// It reports whether an element was removed.
func (v *Value) RemoveAt(i int) bool {
	if v.Kind() != KindArray || i < 0 || i >= len(v.arr) {
		return false
	}
	copy(v.arr[i:], v.arr[i+1:])
	v.arr[len(v.arr)-1] = nil
	v.arr = v.arr[:len(v.arr)-1]
	return true
}

// SetElements replaces the elements of an array.
func (v *Value) SetElements(elems []*Value) {
	if v.Kind() != KindArray {
		return
	}
	v.arr = elems
}

// Keys returns object keys in insertion order.
func (v *Value) Keys() []string {
	if v.Kind() != KindObject {
		return nil
	}
	keys := make([]string, len(v.obj.keys))
	copy(keys, v.obj.keys)
	return keys
}

// Get returns the field named key of an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	field, ok := v.obj.fields[key]
	return field, ok
}

// Has reports whether an object has a field named key.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Set stores field under key, keeping the position of an existing key.
// It is a no-op when v is not an object.
func (v *Value) Set(key string, field *Value) {
	if v.Kind() != KindObject {
		return
	}
	if field == nil {
		field = Null()
	}
	if _, exists := v.obj.fields[key]; !exists {
		v.obj.keys = append(v.obj.keys, key)
	}
	v.obj.fields[key] = field
}

// Delete removes key from an object and reports whether it was present.
func (v *Value) Delete(key string) bool {
	if v.Kind() != KindObject {
		return false
	}
	if _, ok := v.obj.fields[key]; !ok {
		return false
	}
	delete(v.obj.fields, key)
	for i, k := range v.obj.keys {
		if k == key {
			v.obj.keys = append(v.obj.keys[:i], v.obj.keys[i+1:]...)
			break
		}
	}
	return true
}

// Field returns the named field of an object, or nil when v is not an object
// or has no such field. A nil result stringifies as "null".
func (v *Value) Field(key string) *Value {
	field, _ := v.Get(key)
	return field
}

// Assign replaces the contents of v with those of src, so every holder of the
// pointer v sees the new value. src should not be used afterwards.
func (v *Value) Assign(src *Value) {
	if src == nil {
		*v = Value{}
		return
	}
	*v = *src
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := &Value{kind: v.kind, b: v.b, s: v.s}
	switch v.kind {
	case KindArray:
		c.arr = make([]*Value, len(v.arr))
		for i, elem := range v.arr {
			c.arr[i] = elem.Clone()
		}
	case KindObject:
		c.obj = &object{
			keys:   make([]string, len(v.obj.keys)),
			fields: make(map[string]*Value, len(v.obj.fields)),
		}
		copy(c.obj.keys, v.obj.keys)
		for k, field := range v.obj.fields {
			c.obj.fields[k] = field.Clone()
		}
	}
	return c
}
