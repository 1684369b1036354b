package record

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Year is a publication year as carried by source documents, which encode
// it inconsistently as a JSON string or number, or omit it entirely.
type Year string

// UnmarshalJSON accepts both string and numeric year encodings.
func (y *Year) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*y = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*y = Year(n.String())
	return nil
}

// MarshalJSON emits the year as a string, matching the document format.
func (y Year) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(y))
}

// String returns the raw year text.
func (y Year) String() string { return string(y) }

// IsEmpty reports whether no year was supplied.
func (y Year) IsEmpty() bool { return strings.TrimSpace(string(y)) == "" }

// Value parses the year. Missing or unparsable years return (0, false);
// they never raise, they simply disable year-based adjustments.
func (y Year) Value() (int, bool) {
	trimmed := strings.TrimSpace(string(y))
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return value, true
}
