package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OptionList stores a survey's answer options as a JSON column.
type OptionList []string

// Value implements driver.Valuer.
func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (o *OptionList) Scan(src interface{}) error {
	if src == nil {
		*o = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported options column type %T", src)
	}
	return json.Unmarshal(data, o)
}

// Contains reports whether choice is one of the listed options.
func (o OptionList) Contains(choice string) bool {
	for _, opt := range o {
		if opt == choice {
			return true
		}
	}
	return false
}
