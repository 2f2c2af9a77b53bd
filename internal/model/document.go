package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf16"
)

// ErrInvalidDocument is returned when the input is not a single valid JSON value.
var ErrInvalidDocument = errors.New("invalid JSON document")

// Kind identifies the JSON type of a Document node.
type Kind int

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number, kept as its literal text.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object.
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
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

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value *Document
}

// Document is an untyped JSON value of unknown shape.
//
// Unlike map[string]any, a Document keeps object members in the order they
// appear in the source. When a key is repeated, the member stays at the
// position of its first occurrence and holds the value of the last one.
type Document struct {
	// Kind is the JSON type of the node.
	Kind Kind

	// Text holds the value of a string node or the literal of a number node.
	Text string

	// Bool holds the value of a boolean node.
	Bool bool

	// Items holds the elements of an array node.
	Items []*Document

	// Members holds the members of an object node in document order.
	Members []Member
}

// String creates a string node.
func String(s string) *Document {
	return &Document{Kind: KindString, Text: s}
}

// Array creates an array node from the given items.
func Array(items ...*Document) *Document {
	return &Document{Kind: KindArray, Items: items}
}

// Object creates an object node. Members are kept in the given order.
func Object(members ...Member) *Document {
	return &Document{Kind: KindObject, Members: members}
}

// Field is shorthand for building an object Member.
func Field(key string, value *Document) Member {
	return Member{Key: key, Value: value}
}

// Get returns the value of the named member of an object node.
// It returns false for non-object nodes and missing keys.
func (d *Document) Get(key string) (*Document, bool) {
	if d == nil || d.Kind != KindObject {
		return nil, false
	}
	for _, m := range d.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// utf8BOM is stripped from the start of the input before decoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseDocument decodes data into a Document.
// The input must contain exactly one JSON value, optionally surrounded by
// whitespace and preceded by a UTF-8 byte order mark. Any failure wraps
// ErrInvalidDocument.
func ParseDocument(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	doc, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	// Reject trailing data after the top-level value
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrInvalidDocument)
	}

	return doc, nil
}

// decodeValue reads the next complete value from the decoder.
func decodeValue(dec *json.Decoder) (*Document, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
		}
	case string:
		return &Document{Kind: KindString, Text: v}, nil
	case json.Number:
		return &Document{Kind: KindNumber, Text: v.String()}, nil
	case bool:
		return &Document{Kind: KindBool, Bool: v}, nil
	case nil:
		return &Document{Kind: KindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// decodeArray reads array elements up to and including the closing bracket.
func decodeArray(dec *json.Decoder) (*Document, error) {
	doc := &Document{Kind: KindArray, Items: make([]*Document, 0)}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		doc.Items = append(doc.Items, item)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeObject reads object members up to and including the closing brace.
func decodeObject(dec *json.Decoder) (*Document, error) {
	doc := &Document{Kind: KindObject, Members: make([]Member, 0)}
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", tok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		if i, seen := index[key]; seen {
			doc.Members[i].Value = value
			continue
		}
		index[key] = len(doc.Members)
		doc.Members = append(doc.Members, Member{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

// SourceItemCount returns the best-effort number of source items in doc,
// shown as a status counter. For an array it is the array length. For an
// object it is the length of its "conversations" member when that member is
// an array or a string; a missing member or a zero length counts as 1.
// A string's length is measured in UTF-16 code units.
func SourceItemCount(doc *Document) int {
	if doc == nil {
		return 1
	}
	if doc.Kind == KindArray {
		return len(doc.Items)
	}

	conversations, ok := doc.Get("conversations")
	if !ok {
		return 1
	}

	var n int
	switch conversations.Kind {
	case KindArray:
		n = len(conversations.Items)
	case KindString:
		n = utf16Len(conversations.Text)
	}
	if n == 0 {
		return 1
	}
	return n
}

// utf16Len returns the number of UTF-16 code units needed to encode s.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
