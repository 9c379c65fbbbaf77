// internal/service/duration.go
package service

import (
	"errors"
	"fmt"

	ent "taskmanager/ent/generated"
)

// ErrEndBeforeStart signals an inconsistent task date range. It is a data
// condition for the caller to handle, never a panic.
var ErrEndBeforeStart = errors.New("end date is earlier than start date")

// TaskDuration derives the task's duration as "Xh Ym" from its scheduled
// start and end.
func TaskDuration(t *ent.Task) (string, error) {
	d := t.EndDate.Sub(t.StartDate)
	if d < 0 {
		return "", ErrEndBeforeStart
	}

	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes), nil
}
