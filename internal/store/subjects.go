package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// SubjectSet is an insertion-ordered mapping of subject name to definition.
// Order matters to the planner, so it survives JSON encoding.
// The zero value is an empty set ready to use.
type SubjectSet struct {
	names  []string
	byName map[string]Subject
}

// Set adds or replaces a subject. A replaced subject keeps its position.
func (s *SubjectSet) Set(name string, sub Subject) {
	if sub.Portions == nil {
		sub.Portions = []string{}
	}
	if s.byName == nil {
		s.byName = make(map[string]Subject)
	}
	if _, ok := s.byName[name]; !ok {
		s.names = append(s.names, name)
	}
	s.byName[name] = sub
}

// Get returns the subject named name.
func (s *SubjectSet) Get(name string) (Subject, bool) {
	sub, ok := s.byName[name]
	return sub, ok
}

// Delete removes name and reports whether it was present.
func (s *SubjectSet) Delete(name string) bool {
	if _, ok := s.byName[name]; !ok {
		return false
	}
	delete(s.byName, name)
	s.names = slices.DeleteFunc(s.names, func(n string) bool { return n == name })
	return true
}

// Len returns the number of subjects.
func (s *SubjectSet) Len() int {
	return len(s.names)
}

// Names returns subject names in insertion order.
func (s *SubjectSet) Names() []string {
	return slices.Clone(s.names)
}

// All iterates subjects in insertion order.
func (s *SubjectSet) All() iter.Seq2[string, Subject] {
	return func(yield func(string, Subject) bool) {
		for _, name := range s.names {
			if !yield(name, s.byName[name]) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (s *SubjectSet) Clone() SubjectSet {
	var out SubjectSet
	for name, sub := range s.All() {
		out.Set(name, Subject{Credits: sub.Credits, Portions: slices.Clone(sub.Portions)})
	}
	return out
}

// MarshalJSON encodes the set as a JSON object in insertion order.
func (s SubjectSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.byName[name])
		if err != nil {
			return nil, fmt.Errorf("marshal subject %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the key order of the input.
func (s *SubjectSet) UnmarshalJSON(data []byte) error {
	*s = SubjectSet{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("subjects: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("subjects: expected string key, got %v", keyTok)
		}
		var sub Subject
		if err := dec.Decode(&sub); err != nil {
			return fmt.Errorf("subject %q: %w", name, err)
		}
		s.Set(name, sub)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
