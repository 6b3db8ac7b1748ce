package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned when a NOT NULL column would be written without
// a value. An empty string is a value.
var ErrMissingField = errors.New("missing required field")

type requiredField struct {
	name string
	set  bool
}

func required[V any](name string, value *V) requiredField {
	return requiredField{name: name, set: value != nil}
}

func checkRequired(table string, fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if !f.set {
			missing = append(missing, table+"."+f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}
