package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Flag is a boolean stored as 0/1. It reads JSON booleans, numbers and null, and scans
// INTEGER, BOOLEAN and NULL columns.
type Flag bool

// UnmarshalJSON accepts true/false, any number (non-zero is true), null and the
// strings understood by strconv.ParseBool.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = false
		return nil
	case bytes.Equal(data, []byte("true")):
		*f = true
		return nil
	case bytes.Equal(data, []byte("false")):
		*f = false
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("flag: invalid value %q", s)
		}
		*f = Flag(v)
		return nil
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("flag: invalid value %s", data)
		}
		*f = n != 0
		return nil
	}
}

// Scan implements sql.Scanner.
func (f *Flag) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case float64:
		*f = v != 0
	case []byte:
		return f.scanString(string(v))
	case string:
		return f.scanString(v)
	default:
		return fmt.Errorf("flag: cannot scan %T", src)
	}
	return nil
}

func (f *Flag) scanString(s string) error {
	if s == "" {
		*f = false
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("flag: cannot scan %q", s)
	}
	*f = Flag(v)
	return nil
}

// Int returns the 0/1 column value.
func (f Flag) Int() int {
	return BoolToInt(bool(f))
}
