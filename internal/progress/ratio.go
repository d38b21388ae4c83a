package progress

import (
	"slices"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/store"
)

// SubjectRatio returns the share of topics that appear in completed.
// ok is false when the subject has no topics.
func SubjectRatio(topics, completed []string) (ratio float64, ok bool) {
	if len(topics) == 0 {
		return 0, false
	}
	done := 0
	for _, t := range topics {
		if slices.Contains(completed, t) {
			done++
		}
	}
	return float64(done) / float64(len(topics)), true
}

// SubjectProgress is one row of the subject progress display.
type SubjectProgress struct {
	Subject string
	Done    int
	Total   int
	Ratio   float64
}

// Subjects computes progress rows in subject order, skipping subjects
// without topics.
func Subjects(subjects *store.SubjectSet, completed map[string][]string) []SubjectProgress {
	var rows []SubjectProgress
	for name, sub := range subjects.All() {
		ratio, ok := SubjectRatio(sub.Portions, completed[name])
		if !ok {
			continue
		}
		total := len(sub.Portions)
		rows = append(rows, SubjectProgress{
			Subject: name,
			Done:    total - len(planner.Remaining(sub.Portions, completed[name])),
			Total:   total,
			Ratio:   ratio,
		})
	}
	return rows
}

// WeeklyStats counts the plan's items and how many of them are done.
// Revision items count as done when their topic is in completed.
func WeeklyStats(plan *planner.Plan, completed map[string][]string) store.WeeklyStats {
	var ws store.WeeklyStats
	if plan == nil {
		return ws
	}
	for _, sp := range plan.Subjects {
		for _, it := range sp.Items {
			ws.Total++
			if slices.Contains(completed[sp.Subject], it.Topic) {
				ws.Done++
			}
		}
	}
	return ws
}

// Percent renders a weekly snapshot as a whole percentage. ok is false
// for an empty plan.
func Percent(ws store.WeeklyStats) (pct int, ok bool) {
	if ws.Total == 0 {
		return 0, false
	}
	return ws.Done * 100 / ws.Total, true
}
