package fieldmap

import (
	"strings"

	"csv2vcard/internal/contact"
)

// RowMapper turns positional CSV data rows into canonical field maps. It is
// built once per header row by Registry.Resolve.
type RowMapper struct {
	// fields maps column index to canonical field name. Unmatched columns
	// carry no entry and are dropped.
	fields map[int]string
	width  int
}

// Resolve builds a RowMapper from the observed header row. Each header cell
// is normalized and looked up against the spelling sets in catalog order;
// the first canonical field whose set contains the header wins. Headers
// matching no canonical field are ignored.
func (r *Registry) Resolve(header []string) *RowMapper {
	// Reverse index built in catalog order so overlapping spelling sets
	// resolve deterministically.
	lookup := make(map[string]string)
	for _, field := range contact.Fields() {
		for _, spelling := range r.spellings[field] {
			key := normalizeHeader(spelling)
			if _, taken := lookup[key]; !taken {
				lookup[key] = field
			}
		}
	}

	m := &RowMapper{fields: make(map[int]string), width: len(header)}
	claimed := make(map[string]bool)
	for i, cell := range header {
		field, ok := lookup[normalizeHeader(cell)]
		if !ok || claimed[field] {
			continue
		}
		m.fields[i] = field
		claimed[field] = true
	}
	return m
}

// Matched returns how many header columns resolved to a canonical field.
func (m *RowMapper) Matched() int {
	return len(m.fields)
}

// Map converts one data row into a canonical field map. Values are trimmed;
// empty values are treated as absent. Rows shorter than the header read as
// empty in the missing trailing columns, and excess columns are ignored.
func (m *RowMapper) Map(row []string) map[string]string {
	out := make(map[string]string, len(m.fields))
	for i, field := range m.fields {
		if i >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[i])
		if value == "" {
			continue
		}
		out[field] = value
	}
	return out
}
