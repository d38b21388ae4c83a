package store

import "slices"

// Subject is a subject definition as persisted. The subject name is the key
// in SubjectSet and is not repeated here.
type Subject struct {
	Credits  int      `json:"credits"`
	Portions []string `json:"portions"`
}

// Streak is the persisted daily usage streak.
type Streak struct {
	Count    int    `json:"count"`
	LastDate string `json:"last_date"` // YYYY-MM-DD or ""
}

// WeeklyStats is the last-computed snapshot of the current weekly plan.
type WeeklyStats struct {
	Total int `json:"total"`
	Done  int `json:"done"`
}

// State is the single persisted record.
type State struct {
	Subjects      SubjectSet          `json:"subjects"`
	Completed     map[string][]string `json:"completed"`
	Revision      map[string][]string `json:"revision"`
	Streak        Streak              `json:"streak"`
	TopicProgress map[string]int      `json:"topic_progress"`
	WeeklyStats   WeeklyStats         `json:"weekly_stats"`
}

// DefaultState returns the record used when nothing valid is stored.
func DefaultState() *State {
	return &State{
		Completed:     make(map[string][]string),
		Revision:      make(map[string][]string),
		TopicProgress: make(map[string]int),
	}
}

// IsCompleted reports whether topic appears in the completed list of subject.
// The completed list may hold duplicates; only membership matters.
func (s *State) IsCompleted(subject, topic string) bool {
	return slices.Contains(s.Completed[subject], topic)
}

// Normalize replaces nil maps left by a partial record with empty ones.
func (s *State) Normalize() {
	if s.Completed == nil {
		s.Completed = make(map[string][]string)
	}
	if s.Revision == nil {
		s.Revision = make(map[string][]string)
	}
	if s.TopicProgress == nil {
		s.TopicProgress = make(map[string]int)
	}
}
