// Package session holds the view state of one run of the app: subject
// definitions being edited and the active weekly plan. Neither is
// persisted implicitly; the persisted record is owned by the tracker.
package session

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/store"
)

// Credit bounds for a subject definition.
const (
	MinCredits = 1
	MaxCredits = 5
)

// Session is the session-scoped view state.
type Session struct {
	Subjects store.SubjectSet
	Plan     *planner.Plan
	Mode     planner.Mode

	tracker *progress.Tracker
	rng     *rand.Rand
}

// New creates a Session. A nil rng uses a randomly seeded source.
func New(tracker *progress.Tracker, mode planner.Mode, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if mode == "" {
		mode = planner.ModeBalanced
	}
	return &Session{Mode: mode, tracker: tracker, rng: rng}
}

// Seed makes revision picks deterministic.
func (s *Session) Seed(seed uint64) {
	s.rng = rand.New(rand.NewPCG(seed, seed))
}

// Tracker returns the progress tracker backing this session.
func (s *Session) Tracker() *progress.Tracker {
	return s.tracker
}

// State returns the persisted record.
func (s *Session) State() *store.State {
	return s.tracker.State()
}

// Define adds or replaces a subject definition. An empty name is ignored
// and credits are clamped to 1..5. Returns false when nothing was defined.
func (s *Session) Define(name string, credits int, portions []string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	credits = max(MinCredits, min(credits, MaxCredits))
	s.Subjects.Set(name, store.Subject{Credits: credits, Portions: slices.Clone(portions)})
	return true
}

// Remove drops a subject definition.
func (s *Session) Remove(name string) bool {
	return s.Subjects.Delete(name)
}

// LoadSubjects replaces the session's subjects with the saved ones.
func (s *Session) LoadSubjects() {
	s.Subjects = s.State().Subjects.Clone()
}

// SaveSubjects copies the session's subjects into the record and saves it.
func (s *Session) SaveSubjects(ctx context.Context) error {
	s.State().Subjects = s.Subjects.Clone()
	return s.tracker.Save(ctx)
}

// ViewSubjects returns the session subjects with Aptitude and Coding in
// their built-in form.
func (s *Session) ViewSubjects() store.SubjectSet {
	return planner.WithCompulsory(&s.Subjects)
}

// GeneratePlan builds a fresh weekly plan for mode and resets the weekly
// snapshot. The plan is kept even if the save fails.
func (s *Session) GeneratePlan(ctx context.Context, mode planner.Mode) (*planner.Plan, error) {
	st := s.State()
	s.Mode = mode
	s.Plan = planner.Generate(&s.Subjects, mode, st.Completed, st.TopicProgress, s.rng)
	return s.Plan, s.tracker.ResetWeekly(ctx)
}

// Complete marks a topic done. Revision labels are accepted.
func (s *Session) Complete(ctx context.Context, subject, topic string) (progress.Outcome, error) {
	return s.tracker.Complete(ctx, subject, planner.CleanTopic(topic))
}

// RefreshWeekly recomputes the weekly snapshot from the active plan and
// records it on the state.
func (s *Session) RefreshWeekly() store.WeeklyStats {
	ws := progress.WeeklyStats(s.Plan, s.State().Completed)
	s.tracker.RecordWeekly(ws)
	return ws
}

// ProgressRows returns per-subject progress for the session's subjects.
func (s *Session) ProgressRows() []progress.SubjectProgress {
	subjects := s.ViewSubjects()
	return progress.Subjects(&subjects, s.State().Completed)
}

// Remaining lists the outstanding topics of subject.
func (s *Session) Remaining(subject string) []string {
	subjects := s.ViewSubjects()
	sub, ok := subjects.Get(subject)
	if !ok {
		return nil
	}
	return planner.Remaining(sub.Portions, s.State().Completed[subject])
}

// HasTopic reports whether topic belongs to subject.
func (s *Session) HasTopic(subject, topic string) bool {
	subjects := s.ViewSubjects()
	sub, ok := subjects.Get(subject)
	return ok && slices.Contains(sub.Portions, planner.CleanTopic(topic))
}

// IsDone reports whether a plan item's topic is completed.
func (s *Session) IsDone(subject string, item planner.Item) bool {
	return s.State().IsCompleted(subject, item.Topic)
}
