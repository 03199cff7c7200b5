package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, 6, 15, hour, min, sec, 0, time.Local)
}

func strPtr(s string) *string { return &s }

func TestIsLiveBoundaries(t *testing.T) {
	start := strPtr("16:30")

	// 15-minute talk starting 16:30: both boundary instants count as live.
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one second before start", at(16, 29, 59), false},
		{"exactly at start", at(16, 30, 0), true},
		{"mid talk", at(16, 40, 0), true},
		{"exactly at end", at(16, 45, 0), true},
		{"one second after end", at(16, 45, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLive(tt.now, "2025-06-15", start, 15))
		})
	}
}

func TestIsLiveOtherDays(t *testing.T) {
	now := at(16, 35, 0)

	assert.False(t, IsLive(now, "2025-06-14", strPtr("16:30"), 15))
	assert.False(t, IsLive(now, "2025-06-16", strPtr("16:30"), 15))
}

func TestIsLiveMissingInputs(t *testing.T) {
	now := at(16, 35, 0)

	assert.False(t, IsLive(now, "", strPtr("16:30"), 15))
	assert.False(t, IsLive(now, "2025-06-15", nil, 15))
	assert.False(t, IsLive(now, "2025-06-15", strPtr(""), 15))
	assert.False(t, IsLive(now, "2025-06-15", strPtr("later"), 15))
}

func TestToday(t *testing.T) {
	assert.Equal(t, "2025-06-15", Today(at(0, 0, 0)))
	assert.Equal(t, "2025-06-15", Today(at(23, 59, 59)))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-06-15"))
	assert.True(t, ValidDate("2099-01-01"))
	assert.False(t, ValidDate("2025-13-01"))
	assert.False(t, ValidDate("2025-6-15"))
	assert.False(t, ValidDate("tomorrow"))
	assert.False(t, ValidDate(""))
}
