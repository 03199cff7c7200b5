package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithinWindow(t *testing.T) {
	tests := []struct {
		time string
		want bool
	}{
		{"16:30", true},
		{"17:00", true},
		{"18:00", true},
		{"16:29", false},
		{"18:01", false},
		{"00:00", false},
		{"23:59", false},
		{"9:30", false},
		{"16:3", false},
		{"24:00", false},
		{"16:60", false},
		{"", false},
		{"sixteen", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WithinWindow(tt.time), "WithinWindow(%q)", tt.time)
	}
}

func TestValidRange(t *testing.T) {
	tests := []struct {
		start, end string
		want       bool
	}{
		{"16:30", "18:00", true},
		{"16:30", "16:31", true},
		{"17:00", "17:30", true},
		{"16:30", "16:30", false},
		{"17:30", "17:00", false},
		{"16:00", "18:00", false},
		{"16:30", "18:30", false},
		{"", "18:00", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRange(tt.start, tt.end), "ValidRange(%q, %q)", tt.start, tt.end)
	}
}
