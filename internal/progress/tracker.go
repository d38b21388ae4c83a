// Package progress records topic completions and derives completion ratios.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studyplan/internal/logger"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/streak"
	"github.com/abhisek/studyplan/internal/topics"
)

// HardRepetitions is how many completions a hard topic needs before it
// counts as done.
const HardRepetitions = 2

// Outcome describes the effect of one completion.
type Outcome struct {
	Subject     string
	Topic       string
	Hard        bool
	Repetitions int  // topic_progress after this completion
	Marked      bool // appended to completed by this completion
	Streak      store.Streak
}

// Describe renders the outcome as a one-line status message.
func (o Outcome) Describe() string {
	switch {
	case o.Marked:
		return fmt.Sprintf("✓ %s marked complete.", o.Topic)
	case o.Hard:
		return fmt.Sprintf("%s is a hard topic: %d of %d completions.", o.Topic, o.Repetitions, HardRepetitions)
	default:
		return fmt.Sprintf("%s recorded.", o.Topic)
	}
}

// Tracker applies completion events to the persisted state and saves it
// after every mutation.
type Tracker struct {
	state  *store.State
	repo   store.StateRepo
	events store.EventRepo // optional
	log    *logger.Logger

	// Now returns the current time. Overridable for tests.
	Now func() time.Time
}

// NewTracker creates a Tracker over st. events may be nil.
func NewTracker(st *store.State, repo store.StateRepo, events store.EventRepo, log *logger.Logger) *Tracker {
	st.Normalize()
	return &Tracker{
		state:  st,
		repo:   repo,
		events: events,
		log:    logger.OrNop(log),
		Now:    time.Now,
	}
}

// State returns the live state.
func (t *Tracker) State() *store.State {
	return t.state
}

// Key is the topic_progress key for a subject/topic pair.
func Key(subject, topic string) string {
	return subject + "-" + topic
}

// Complete records that the user finished topic in subject.
//
// The repetition count always goes up and the topic is always added to the
// revision history. Easy topics are marked complete immediately; hard topics
// only once their count reaches HardRepetitions. Repeated qualifying
// completions append again. The streak is advanced and the state saved.
func (t *Tracker) Complete(ctx context.Context, subject, topic string) (Outcome, error) {
	st := t.state
	key := Key(subject, topic)
	st.TopicProgress[key]++

	out := Outcome{
		Subject:     subject,
		Topic:       topic,
		Hard:        topics.IsHard(topic),
		Repetitions: st.TopicProgress[key],
	}

	if !out.Hard || out.Repetitions >= HardRepetitions {
		st.Completed[subject] = append(st.Completed[subject], topic)
		out.Marked = true
	}
	st.Revision[subject] = append(st.Revision[subject], topic)

	now := t.Now()
	st.Streak = streak.Update(st.Streak, now)
	out.Streak = st.Streak

	if err := t.repo.Save(ctx, st); err != nil {
		return out, fmt.Errorf("save state: %w", err)
	}

	if t.events != nil {
		ev := store.CompletionEvent{
			Subject:     subject,
			Topic:       topic,
			Repetitions: out.Repetitions,
			Marked:      out.Marked,
			OccurredAt:  now,
		}
		// The state is already saved; a lost history row is only logged.
		if err := t.events.AppendCompletion(ctx, ev); err != nil {
			t.log.Warn("failed to record completion event", "subject", subject, "topic", topic, "error", err)
		}
	}

	return out, nil
}

// Save persists the live state.
func (t *Tracker) Save(ctx context.Context) error {
	if err := t.repo.Save(ctx, t.state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// RecordWeekly stores the weekly snapshot computed from the active plan.
// It is not persisted on its own; the next save carries it.
func (t *Tracker) RecordWeekly(ws store.WeeklyStats) {
	t.state.WeeklyStats = ws
}

// ResetWeekly zeroes the weekly snapshot and saves. Called when a new plan
// is generated.
func (t *Tracker) ResetWeekly(ctx context.Context) error {
	t.state.WeeklyStats = store.WeeklyStats{}
	return t.Save(ctx)
}
