package scheduler

import (
	"strings"
	"time"

	"timetablegen/pkg/model"
)

// SlotDuration is the width of every scheduling slot.
const SlotDuration = 60 * time.Minute

// clockLayout accepts 12-hour inputs such as "9am" or "11PM".
const clockLayout = "3PM"

// labelLayout renders the fixed-width grid label, e.g. "09AM".
const labelLayout = "03PM"

// ParseClock parses a 12-hour clock string with meridiem.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return time.Time{}, &model.TimeFormatError{Input: s}
	}
	return t, nil
}

// SlotLabel formats a clock time as its grid label.
func SlotLabel(t time.Time) string {
	return t.Format(labelLayout)
}

// BuildSlots produces the chronological slot labels from start through
// end, stepping by SlotDuration. The end label is appended
// unconditionally after the stepping loop, so end <= start yields
// exactly the single end label. No dedupe is performed on the final
// label; callers must tolerate a trailing duplicate.
func BuildSlots(start string, end string) ([]string, error) {
	from, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseClock(end)
	if err != nil {
		return nil, err
	}
	var slots []string
	for t := from; t.Before(to); t = t.Add(SlotDuration) {
		slots = append(slots, SlotLabel(t))
	}
	return append(slots, SlotLabel(to)), nil
}
