package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"bizchat-be/internal/pkg/apperr"
)

// Interval is a half-open [Start, End) range expressed in minutes from
// midnight of a single day. Appointments spanning midnight are not
// supported.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// ComputeSlots enumerates candidate slot start times of 'granularity'
// minutes between open and close, dropping every slot that overlaps a
// busy interval. Slots are returned ascending. A slot must fit entirely
// before closing time; partial trailing slots are not generated.
func ComputeSlots(openMin, closeMin, granularity int, busy []Interval) []int {
	if granularity <= 0 {
		granularity = 30
	}

	var slots []int
	for start := openMin; start+granularity <= closeMin; start += granularity {
		candidate := Interval{Start: start, End: start + granularity}
		conflict := false
		for _, b := range busy {
			if Overlaps(candidate, b) {
				conflict = true
				break
			}
		}
		if !conflict {
			slots = append(slots, start)
		}
	}
	return slots
}

// FormatClock renders minutes-from-midnight as "H:MM" without a leading
// zero on the hour, matching the slot labels shown to visitors.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ParseClock parses "H:MM" or "HH:MM" into minutes from midnight.
// Anything else ("9:5", trailing text, am/pm suffixes) is rejected.
func ParseClock(value string) (int, error) {
	hourPart, minutePart, found := strings.Cut(value, ":")
	if !found || len(hourPart) < 1 || len(hourPart) > 2 || len(minutePart) != 2 {
		return 0, apperr.ValidationField("time", fmt.Sprintf("invalid clock value %q", value))
	}
	for _, r := range hourPart + minutePart {
		if r < '0' || r > '9' {
			return 0, apperr.ValidationField("time", fmt.Sprintf("invalid clock value %q", value))
		}
	}

	hour, _ := strconv.Atoi(hourPart)
	minute, _ := strconv.Atoi(minutePart)
	if hour > 23 || minute > 59 {
		return 0, apperr.ValidationField("time", fmt.Sprintf("clock value %q out of range", value))
	}
	return hour*60 + minute, nil
}
