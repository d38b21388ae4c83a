// Package streak maintains the consecutive-day usage counter.
package streak

import (
	"time"

	"github.com/abhisek/studyplan/internal/store"
)

// DateLayout is the calendar date format stored in last_date.
const DateLayout = "2006-01-02"

// Update returns s advanced for an action on today. Repeats on the same
// day are no-ops; a one-day gap extends the streak; anything else,
// including a date in the future or an unparsable stored date, restarts
// it at 1.
func Update(s store.Streak, today time.Time) store.Streak {
	day := today.Format(DateLayout)
	if s.LastDate == day {
		return s
	}

	if s.LastDate == "" {
		return store.Streak{Count: 1, LastDate: day}
	}

	if DaysBetween(s.LastDate, today) == 1 {
		s.Count++
	} else {
		s.Count = 1
	}
	s.LastDate = day
	return s
}

// DaysBetween returns the number of calendar days from last to today.
// It returns 0 when last cannot be parsed.
func DaysBetween(last string, today time.Time) int {
	prev, err := time.Parse(DateLayout, last)
	if err != nil {
		return 0
	}
	// Compare midnights in UTC so DST shifts cannot produce 23h/25h days.
	y, m, d := today.Date()
	cur := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(cur.Sub(prev).Hours() / 24)
}

// NextMilestone returns the next streak milestone above count.
func NextMilestone(count int) int {
	milestones := []int{5, 10, 15, 20}
	for _, m := range milestones {
		if m > count {
			return m
		}
	}
	// Beyond 20, every 5.
	return ((count / 5) + 1) * 5
}
