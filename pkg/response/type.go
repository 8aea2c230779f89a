package response

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// DateTime is a timestamp that travels as DateTimeFormat in UTC.
type DateTime time.Time

// NewDateTime truncates t to whole seconds, the precision of DateTimeFormat.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UTC().Truncate(time.Second))
}

// Time returns the underlying time.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	t, err := time.ParseInLocation(DateTimeFormat, s, time.UTC)
	if err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	*d = DateTime(t)
	return nil
}
