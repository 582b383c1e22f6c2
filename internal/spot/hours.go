package spot

import (
	"strconv"
	"strings"
	"time"
)

// OpenState classifies a spot at a point in time. Unknown is distinct
// from Closed: spots without any schedule (all user spots) are Unknown.
type OpenState int

const (
	StateUnknown OpenState = iota
	StateClosed
	StateOpen
)

func (st OpenState) String() string {
	switch st {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// OpenStateAt evaluates the weekly schedule against now. A weekday in
// the closed-days set is closed even when a table entry exists for it.
func (s *Spot) OpenStateAt(now time.Time) OpenState {
	if len(s.OpeningHours) == 0 {
		return StateUnknown
	}

	day := int(now.Weekday())
	for _, d := range s.ClosedDays {
		if d == day {
			return StateClosed
		}
	}

	minuteOfDay := now.Hour()*60 + now.Minute()
	for _, h := range s.OpeningHours {
		if h.Day != day {
			continue
		}
		open, okOpen := parseMinutes(h.Open)
		close, okClose := parseMinutes(h.Close)
		if !okOpen || !okClose {
			return StateClosed
		}
		if minuteOfDay >= open && minuteOfDay < close {
			return StateOpen
		}
		return StateClosed
	}
	return StateClosed
}

// parseMinutes converts "HH:MM" to minute-of-day.
func parseMinutes(v string) (int, bool) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
