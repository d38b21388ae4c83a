package planner

import "strings"

// RevisionPrefix marks a suggested repeat of an already completed topic.
const RevisionPrefix = "Revise → "

// Item is one entry of a subject's weekly list.
type Item struct {
	Topic    string
	Revision bool
}

// Label renders the item as shown to the user.
func (i Item) Label() string {
	if i.Revision {
		return RevisionPrefix + i.Topic
	}
	return i.Topic
}

// SubjectPlan is the selected work for one subject.
type SubjectPlan struct {
	Subject string
	Items   []Item
}

// Plan is the weekly plan, ordered main, optional, then compulsory subjects.
// It lives for the session only.
type Plan struct {
	Mode     Mode
	Subjects []SubjectPlan
}

// Len returns the total number of items across subjects.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, sp := range p.Subjects {
		n += len(sp.Items)
	}
	return n
}

// Labels returns the plan in its plain string form keyed by subject.
func (p *Plan) Labels() map[string][]string {
	out := make(map[string][]string, len(p.Subjects))
	for _, sp := range p.Subjects {
		labels := make([]string, 0, len(sp.Items))
		for _, it := range sp.Items {
			labels = append(labels, it.Label())
		}
		out[sp.Subject] = labels
	}
	return out
}

// CleanTopic strips the revision prefix from a label.
func CleanTopic(label string) string {
	return strings.TrimPrefix(label, RevisionPrefix)
}
