package cfgdoc

import "github.com/gobwas/glob"

// MatchSections returns the sections whose names match the given glob
// pattern, in document order. Double-asterisk patterns are supported.
func (d *Document) MatchSections(pattern string) ([]*Section, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var out []*Section
	for _, s := range d.sections {
		if g.Match(s.name) {
			out = append(out, s)
		}
	}

	return out, nil
}

// MatchEntries returns the entries whose names match the given glob pattern,
// in section order.
func (s *Section) MatchEntries(pattern string) ([]*Entry, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}

	var out []*Entry
	for _, e := range s.entries {
		if g.Match(e.name) {
			out = append(out, e)
		}
	}

	return out, nil
}
