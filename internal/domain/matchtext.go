package domain

import "strings"

// MatchText builds the embedding input for an expert. Field order is fixed:
// biography, location, desired work, then publication titles in stored order.
// Empty fields contribute nothing; the remaining values are joined by single
// spaces. Same field values always produce the same string.
func (e *Expert) MatchText() string {
	parts := make([]string, 0, 3+len(e.Publications))
	for _, v := range []string{e.Biography, e.Location, e.DesiredWork} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	for _, p := range e.Publications {
		if p.Title != "" {
			parts = append(parts, p.Title)
		}
	}
	return strings.Join(parts, " ")
}

// MatchText builds the embedding input for a project. Field order is fixed:
// description, then qualifications. Empty fields contribute nothing.
func (p *Project) MatchText() string {
	parts := make([]string, 0, 2)
	for _, v := range []string{p.Description, p.Qualifications} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
