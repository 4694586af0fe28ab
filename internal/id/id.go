package id

import (
	"fmt"
	"time"
)

// FormatEntryID returns an entry reference like "2025-01-001".
func FormatEntryID(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// FormatLegID returns a journal line reference like "2025-01-001a" (leg 0='a', 1='b').
func FormatLegID(entryID string, leg int) string {
	return entryID + string(rune('a'+leg))
}

// EntryGroup strips the leg suffix from a leg reference.
// "2025-01-001a" -> "2025-01-001"
func EntryGroup(legID string) string {
	i := len(legID)
	for i > 0 && legID[i-1] >= 'a' && legID[i-1] <= 'z' {
		i--
	}
	return legID[:i]
}

// Sequencer hands out entry references numbered per calendar month.
// The zero value is ready to use. It is not safe for concurrent use.
type Sequencer struct {
	last map[[2]int]int
}

// Next returns the next entry reference for the month containing date.
func (s *Sequencer) Next(date time.Time) string {
	if s.last == nil {
		s.last = make(map[[2]int]int)
	}
	key := [2]int{date.Year(), int(date.Month())}
	s.last[key]++
	return FormatEntryID(key[0], key[1], s.last[key])
}

