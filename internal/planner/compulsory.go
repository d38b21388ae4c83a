package planner

import "github.com/abhisek/studyplan/internal/store"

// Compulsory subject names. They are always planned with built-in topics.
const (
	SubjectAptitude = "Aptitude"
	SubjectCoding   = "Coding"
)

// Compulsory returns the built-in subjects in plan order.
func Compulsory() []NamedSubject {
	return []NamedSubject{
		{Name: SubjectAptitude, Subject: store.Subject{
			Credits:  1,
			Portions: []string{"Percentages", "Ratio", "Time Work", "Probability"},
		}},
		{Name: SubjectCoding, Subject: store.Subject{
			Credits:  1,
			Portions: []string{"Arrays", "Strings", "Recursion", "Graphs", "DP"},
		}},
	}
}

// IsCompulsory reports whether name is one of the built-in subjects.
func IsCompulsory(name string) bool {
	return name == SubjectAptitude || name == SubjectCoding
}

// WithCompulsory returns a copy of subjects with the built-in subjects
// set to their fixed definitions.
func WithCompulsory(subjects *store.SubjectSet) store.SubjectSet {
	out := subjects.Clone()
	for _, c := range Compulsory() {
		out.Set(c.Name, c.Subject)
	}
	return out
}
