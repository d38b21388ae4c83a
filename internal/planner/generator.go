// Package planner builds the weekly study plan.
package planner

import (
	"math/rand/v2"

	"github.com/abhisek/studyplan/internal/store"
)

// NamedSubject pairs a subject definition with its name.
type NamedSubject struct {
	Name string
	store.Subject
}

// Generate selects this week's topics.
//
// Main subjects (credits > 1) are cut to the mode's limit in insertion
// order; optional subjects (credits == 1) are all kept; Aptitude and Coding
// are appended with their built-in topics. Each subject gets
// max(1, min(intensity + credits/2, remaining)) of its first remaining
// topics, or one random revision item when everything is done. Subjects
// without topics, or without a name, are left out.
//
// progress is not consulted: hard topics are selected exactly like easy
// ones.
func Generate(subjects *store.SubjectSet, mode Mode, completed map[string][]string, progress map[string]int, rng *rand.Rand) *Plan {
	plan := &Plan{Mode: mode}

	for _, ns := range orderSubjects(subjects, mode) {
		if len(ns.Portions) == 0 {
			continue
		}

		remaining := Remaining(ns.Portions, completed[ns.Name])
		if len(remaining) == 0 {
			pick := ns.Portions[rng.IntN(len(ns.Portions))]
			plan.Subjects = append(plan.Subjects, SubjectPlan{
				Subject: ns.Name,
				Items:   []Item{{Topic: pick, Revision: true}},
			})
			continue
		}

		count := topicCount(mode, ns.Credits, len(remaining))
		items := make([]Item, 0, count)
		for _, topic := range remaining[:count] {
			items = append(items, Item{Topic: topic})
		}
		plan.Subjects = append(plan.Subjects, SubjectPlan{Subject: ns.Name, Items: items})
	}

	return plan
}

// orderSubjects returns main ++ optional ++ compulsory for the mode.
func orderSubjects(subjects *store.SubjectSet, mode Mode) []NamedSubject {
	var main, optional []NamedSubject
	for name, sub := range subjects.All() {
		if name == "" || IsCompulsory(name) {
			continue
		}
		ns := NamedSubject{Name: name, Subject: sub}
		if sub.Credits > 1 {
			main = append(main, ns)
		} else {
			optional = append(optional, ns)
		}
	}

	if limit := mode.MainLimit(); len(main) > limit {
		main = main[:limit]
	}

	out := make([]NamedSubject, 0, len(main)+len(optional)+2)
	out = append(out, main...)
	out = append(out, optional...)
	out = append(out, Compulsory()...)
	return out
}

// topicCount is max(1, min(intensity + credits/2, remaining)).
func topicCount(mode Mode, credits, remaining int) int {
	return max(1, min(mode.Intensity()+credits/2, remaining))
}

// Remaining returns topics not present in done, in topic order.
func Remaining(topics, done []string) []string {
	doneSet := make(map[string]struct{}, len(done))
	for _, d := range done {
		doneSet[d] = struct{}{}
	}
	var out []string
	for _, t := range topics {
		if _, ok := doneSet[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
