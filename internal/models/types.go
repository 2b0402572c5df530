package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList stores a list of strings as a JSON-encoded text column.
// A NULL column decodes to an empty list; a stored value that fails to
// decode is a data-integrity error and fails the whole read.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal([]string(l))
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal tags value:", value))
	}

	if len(bytes) == 0 {
		*l = StringList{}
		return nil
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return fmt.Errorf("corrupt tags value %q: %w", bytes, err)
	}
	*l = StringList(result)
	return nil
}
