// internal/service/duration_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "taskmanager/ent/generated"
)

func TestTaskDuration(t *testing.T) {
	base := time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{
			name:  "hours and minutes",
			start: base,
			end:   base.Add(26*time.Hour + 45*time.Minute),
			want:  "26h 45m",
		},
		{
			name:  "zero duration",
			start: base,
			end:   base,
			want:  "0h 0m",
		},
		{
			name:  "sub-minute truncates",
			start: base,
			end:   base.Add(59 * time.Second),
			want:  "0h 0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TaskDuration(&ent.Task{StartDate: tt.start, EndDate: tt.end})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskDuration_EndBeforeStart(t *testing.T) {
	base := time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC)

	_, err := TaskDuration(&ent.Task{StartDate: base, EndDate: base.Add(-time.Hour)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}
