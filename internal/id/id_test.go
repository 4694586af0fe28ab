package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEntryID(t *testing.T) {
	tests := []struct {
		year, month, seq int
		want             string
	}{
		{2025, 1, 1, "2025-01-001"},
		{2025, 12, 99, "2025-12-099"},
		{2025, 1, 123, "2025-01-123"},
	}
	for _, tt := range tests {
		got := FormatEntryID(tt.year, tt.month, tt.seq)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatLegID(t *testing.T) {
	assert.Equal(t, "2025-01-001a", FormatLegID("2025-01-001", 0))
	assert.Equal(t, "2025-01-001b", FormatLegID("2025-01-001", 1))
}

func TestEntryGroup(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-01-001a", "2025-01-001"},
		{"2025-01-001b", "2025-01-001"},
		{"2025-01-001", "2025-01-001"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EntryGroup(tt.input))
	}
}

func TestSequencer(t *testing.T) {
	var s Sequencer
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-01-001", s.Next(jan))
	assert.Equal(t, "2025-01-002", s.Next(jan))
	assert.Equal(t, "2025-02-001", s.Next(feb), "sequence restarts each month")
	assert.Equal(t, "2025-01-003", s.Next(jan.AddDate(0, 0, 10)))
}
