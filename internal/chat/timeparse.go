package chat

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrBadTime signals a time phrase that could not be resolved. The
// caller must reject the whole command instead of scheduling anything.
var ErrBadTime = errors.New("unrecognized time phrase")

var timePhraseRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(?:\s*(am|pm))?$`)

// ParseTime resolves a 12-hour clock phrase like "6 PM", "6:30 pm" or
// "18:30" to its next occurrence after now, in now's location. A time
// already passed today rolls over to tomorrow, never further.
func ParseTime(phrase string, now time.Time) (time.Time, error) {
	m := timePhraseRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(phrase)))
	if m == nil {
		return time.Time{}, ErrBadTime
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, ErrBadTime
	}

	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, ErrBadTime
		}
	}
	if minute > 59 {
		return time.Time{}, ErrBadTime
	}

	switch m[3] {
	case "pm":
		if hour < 1 || hour > 12 {
			return time.Time{}, ErrBadTime
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour < 1 || hour > 12 {
			return time.Time{}, ErrBadTime
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return time.Time{}, ErrBadTime
		}
	}

	scheduled := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !scheduled.After(now) {
		scheduled = scheduled.AddDate(0, 0, 1)
	}
	return scheduled, nil
}
