package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Separators used when list fields are stored as delimited text. An item that
// itself contains the separator does not survive a round trip.
const (
	LineSeparator  = "\n"
	SkillSeparator = ", "
)

// StringList is an ordered list field on the wire. It decodes from either a
// JSON array or an already joined string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected a string or an array of strings: %w", err)
	}
	*l = items
	return nil
}

// Join encodes the list for storage.
func (l StringList) Join(sep string) string {
	return strings.Join(l, sep)
}

// SplitList decodes stored delimited text.
func SplitList(s, sep string) []string {
	return strings.Split(s, sep)
}

// Document is a structured value (objects, lists, scalars) stored as JSON.
// It is only encoded when written to the database.
type Document struct {
	Data any
}

// NewDocument wraps v.
func NewDocument(v any) Document {
	return Document{Data: v}
}

// EmptyDocument is substituted whenever a stored document cannot be decoded.
func EmptyDocument() Document {
	return Document{Data: map[string]any{}}
}

// IsZero reports whether the document holds nothing.
func (d Document) IsZero() bool {
	return d.Data == nil
}

// Object returns the document as a JSON object, or an empty map when it is
// something else.
func (d Document) Object() map[string]any {
	if m, ok := d.Data.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// Scan decodes a stored value. Malformed content becomes an empty document
// instead of failing the read.
func (d *Document) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		d.Data = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case int64:
		// NUMERIC column affinity turns scalar documents into numbers
		d.Data = float64(v)
		return nil
	case float64:
		d.Data = v
		return nil
	default:
		*d = EmptyDocument()
		return nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		d.Data = nil
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		*d = EmptyDocument()
		return nil
	}
	d.Data = v
	return nil
}

// Value encodes the document for storage.
func (d Document) Value() (driver.Value, error) {
	if d.Data == nil {
		return nil, nil
	}
	raw, err := json.Marshal(d.Data)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return datatypes.JSON(raw).Value()
}

func (Document) GormDataType() string {
	return datatypes.JSON(nil).GormDataType()
}

func (Document) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return datatypes.JSON(nil).GormDBDataType(db, field)
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.Data == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.Data)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	d.Data = v
	return nil
}
