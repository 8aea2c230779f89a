package orchestrator

import (
	"fmt"
	"time"
)

// Date format
const (
	DateFormatISO = "2006-01-02"
)

// buildTimeContext creates a temporal context string for LLM
func buildTimeContext(timezone string, now time.Time) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	now = now.In(loc)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		now.Weekday().String(),
		loc.String(),
	)
}
