package domain

import "strings"

// Matches applies the monastery filter semantics: the free-text search is a
// trimmed, case-insensitive substring test over name, sect, district,
// location, and description (any field may match); sect and district are
// exact, case-insensitive equality; all supplied criteria must hold.
func (f MonasteryFilter) Matches(m Monastery) bool {
	if f.Sect != "" && !strings.EqualFold(f.Sect, string(m.Sect)) {
		return false
	}
	if f.District != "" && !strings.EqualFold(f.District, m.District) {
		return false
	}
	if f.Featured != nil && m.Featured != *f.Featured {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Search))
	if query == "" {
		return true
	}
	for _, field := range []string{m.Name, string(m.Sect), m.District, m.Location, m.Description} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Matches reports whether the artifact satisfies every supplied criterion.
func (f ArtifactFilter) Matches(a Artifact) bool {
	if f.MonasteryID != 0 && a.MonasteryID != f.MonasteryID {
		return false
	}
	if f.Category != "" && !strings.EqualFold(f.Category, a.Category) {
		return false
	}
	return matchesSearch(f.Search, a.Name, a.Description)
}

// Matches reports whether the ritual satisfies every supplied criterion.
func (f RitualFilter) Matches(r Ritual) bool {
	if f.MonasteryID != 0 && r.MonasteryID != f.MonasteryID {
		return false
	}
	if f.Type != "" && !strings.EqualFold(f.Type, r.Type) {
		return false
	}
	return matchesSearch(f.Search, r.Name, r.Description)
}

// Matches reports whether the record satisfies every supplied criterion.
func (f HistoricalRecordFilter) Matches(r HistoricalRecord) bool {
	if f.MonasteryID != 0 && r.MonasteryID != f.MonasteryID {
		return false
	}
	if f.Type != "" && !strings.EqualFold(f.Type, r.Type) {
		return false
	}
	if f.Language != "" && !strings.EqualFold(f.Language, r.Language) {
		return false
	}
	return matchesSearch(f.Search, r.Title, r.Summary)
}

func matchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
