// Package capability models the capability set served by the capability API
// and the registration membership derived from it.
package capability

import "strings"

// Details describes one capability as returned by the API.
type Details struct {
	Description       string   `json:"description"`
	PracticeArea      string   `json:"practice_area"`
	Capacity          float64  `json:"capacity"`
	SkillLevels       []string `json:"skill_levels"`
	Certifications    []string `json:"certifications"`
	IndustryVerticals []string `json:"industry_verticals"`
	Consultants       []string `json:"consultants"`
}

// Entry pairs a capability name with its details.
type Entry struct {
	Name    string
	Details Details
}

// Set is the capability mapping in the key order it was received.
//
// Names are unique; the zero value is an empty set.
type Set struct {
	entries []Entry
	index   map[string]int
}

// NewSet builds a set from entries. A repeated name replaces the earlier
// details but keeps the first position, matching JSON object semantics.
func NewSet(entries ...Entry) Set {
	var s Set
	for _, entry := range entries {
		s.put(entry)
	}
	return s
}

func (s *Set) put(entry Entry) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if idx, ok := s.index[entry.Name]; ok {
		s.entries[idx] = entry
		return
	}
	s.index[entry.Name] = len(s.entries)
	s.entries = append(s.entries, entry)
}

// Len returns the number of capabilities.
func (s Set) Len() int { return len(s.entries) }

// Entries returns a copy of the entries in received order.
func (s Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Names returns capability names in received order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		names = append(names, entry.Name)
	}
	return names
}

// Lookup returns the details for name.
func (s Set) Lookup(name string) (Details, bool) {
	idx, ok := s.index[name]
	if !ok {
		return Details{}, false
	}
	return s.entries[idx].Details, true
}

// NormalizeEmail trims and lower-cases an entered email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsConsultant reports whether consultant matches the normalized email.
// An empty email never matches.
func IsConsultant(consultant string, normalizedEmail string) bool {
	if normalizedEmail == "" {
		return false
	}
	return strings.ToLower(consultant) == normalizedEmail
}

// IsRegistered reports whether email appears in the consultants list,
// compared case-insensitively after trimming the entered email.
func (d Details) IsRegistered(email string) bool {
	normalized := NormalizeEmail(email)
	for _, consultant := range d.Consultants {
		if IsConsultant(consultant, normalized) {
			return true
		}
	}
	return false
}
