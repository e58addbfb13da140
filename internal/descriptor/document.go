package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Value is one node of a parsed descriptor document: string, json.Number,
// bool, nil, *Object, or []Value. Numbers stay json.Number so that their
// original literal form survives a round-trip untouched.
type Value interface{}

// Object is an ordered string-keyed mapping. Plain Go maps would lose the
// key order, which is an observable property of the files we rewrite.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty Object
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Get returns the value for a key; absence is not an error
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set replaces the value for an existing key in place, keeping its
// position among siblings; an absent key is appended at the end.
func (o *Object) Set(key string, value Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Keys returns the keys in document order
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys
func (o *Object) Len() int {
	return len(o.keys)
}

// clone copies the object one level deep. Values are shared: the patcher
// only ever replaces top-level scalars, never mutates nested nodes.
func (o *Object) clone() *Object {
	c := &Object{
		keys:   append([]string(nil), o.keys...),
		values: make(map[string]Value, len(o.values)),
	}
	for k, v := range o.values {
		c.values[k] = v
	}
	return c
}

// Document is a parsed descriptor file
type Document struct {
	root *Object
}

// Root returns the top-level object
func (d *Document) Root() *Object {
	return d.root
}

// GetString returns a top-level string value by key
func (d *Document) GetString(key string) (string, bool) {
	v, ok := d.root.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// WithString returns a new Document with one top-level string replaced
// (or appended when absent). The receiver is left untouched.
func (d *Document) WithString(key, value string) *Document {
	root := d.root.clone()
	root.Set(key, value)
	return &Document{root: root}
}

// Parse reads a descriptor document, preserving key order and numeric
// literals. The root must be a JSON object.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}

	root, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("descriptor root is not an object")
	}

	// Anything after the closing brace is malformed input, whether it
	// tokenizes or not. Only a clean EOF is acceptable.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected content after document end")
	}

	return &Document{root: root}, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string, json.Number, bool, nil:
		return t, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return obj, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}

		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
}

func parseArray(dec *json.Decoder) ([]Value, error) {
	arr := []Value{}
	for {
		if !dec.More() {
			// Consume the closing bracket
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}

		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
}

// Marshal serializes the document deterministically with two-space
// indentation. Serializing a parsed document is a fixed point: another
// parse/marshal cycle reproduces the same bytes.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, d.root, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

const indentUnit = "  "

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(indentUnit)
	}
}

func writeValue(buf *bytes.Buffer, v Value, depth int) error {
	switch t := v.(type) {
	case *Object:
		if t.Len() == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, key := range t.keys {
			writeIndent(buf, depth+1)
			if err := writeString(buf, key); err != nil {
				return err
			}
			buf.WriteString(": ")
			if err := writeValue(buf, t.values[key], depth+1); err != nil {
				return err
			}
			if i < len(t.keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte('}')
		return nil
	case []Value:
		if len(t) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, item := range t {
			writeIndent(buf, depth+1)
			if err := writeValue(buf, item, depth+1); err != nil {
				return err
			}
			if i < len(t)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		writeIndent(buf, depth)
		buf.WriteByte(']')
		return nil
	case string:
		return writeString(buf, t)
	case json.Number:
		buf.WriteString(t.String())
		return nil
	case bool:
		buf.WriteString(strconv.FormatBool(t))
		return nil
	case nil:
		buf.WriteString("null")
		return nil
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
}

func writeString(buf *bytes.Buffer, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}
