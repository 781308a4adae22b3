package parser

import (
	"strings"

	"github.com/teranos/kin/gedcom"
)

// section tracks which sub-record the level-2 lines of an individual belong
// to. It is a flat flag, not a parse tree: only the four section-opening
// tags (BIRT, DEAT, OBJE, NOTE) and a new record reset it, so level-2 lines
// after an unrelated level-1 tag still land in the last opened section.
// That tolerance is part of the contract.
type section int

const (
	sectionNone section = iota
	sectionBirth
	sectionDeath
	sectionMedia
	sectionNotes
)

// extractIndividuals runs the individual-mode pass over the tokenized
// stream, committing each accumulated record when the next level-0 INDI
// line (or end of stream) is reached. A later record with a colliding id
// overwrites the earlier one.
func extractIndividuals(lines []string, out *gedcom.Result) {
	var (
		current *gedcom.Individual
		sect    = sectionNone
	)

	commit := func() {
		if current == nil {
			return
		}
		if _, seen := out.Individuals[current.ID]; !seen {
			out.IndividualOrder = append(out.IndividualOrder, current.ID)
		}
		out.Individuals[current.ID] = current
	}

	for _, raw := range lines {
		l, ok := tokenize(raw)
		if !ok {
			continue
		}

		if l.level == 0 && l.value == "INDI" {
			commit()
			current = gedcom.NewIndividual(stripPointer(l.tag, "I"))
			sect = sectionNone
			continue
		}

		if current == nil {
			continue
		}

		switch l.level {
		case 1:
			sect = individualTag(current, l, sect)
		case 2:
			individualSectionTag(current, l, sect)
		}
	}

	commit()
}

// individualTag dispatches a level-1 line and returns the section state the
// following level-2 lines should use.
func individualTag(ind *gedcom.Individual, l line, sect section) section {
	switch l.tag {
	case "NAME":
		ind.Name = NormalizeName(l.value)
	case "SEX":
		ind.Gender = l.value
	case "OCCU":
		ind.Occupation = l.value
	case "BIRT":
		return sectionBirth
	case "DEAT":
		return sectionDeath
	case "OBJE":
		return sectionMedia
	case "NOTE":
		if l.value != "" {
			ind.Notes = append(ind.Notes, l.value)
		}
		return sectionNotes
	case "FAMC":
		if id := stripPointer(l.value, "F"); id != "" {
			ind.FamiliesAsChild = append(ind.FamiliesAsChild, id)
		}
	case "FAMS":
		if id := stripPointer(l.value, "F"); id != "" {
			ind.FamiliesAsSpouse = append(ind.FamiliesAsSpouse, id)
		}
	}
	return sect
}

// individualSectionTag dispatches a level-2 line into the open section.
func individualSectionTag(ind *gedcom.Individual, l line, sect section) {
	switch sect {
	case sectionBirth:
		eventTag(&ind.Birth, l)
	case sectionDeath:
		eventTag(&ind.Death, l)
	case sectionMedia:
		if l.tag == "FILE" {
			ind.Media = append(ind.Media, l.value)
		}
	case sectionNotes:
		// CONT, CONC and nested NOTE all append as independent entries;
		// no continuation joining is attempted.
		switch l.tag {
		case "CONT", "CONC", "NOTE":
			if l.value != "" {
				ind.Notes = append(ind.Notes, l.value)
			}
		}
	}
}

func eventTag(ev *gedcom.EventDetail, l line) {
	switch l.tag {
	case "DATE":
		ev.Date = l.value
	case "PLAC":
		ev.Place = l.value
	}
}

// NormalizeName flattens GEDCOM slash-delimited surname markup:
// "John /SMITH/" becomes "John SMITH". The value is split on every slash,
// segments are trimmed, empty segments dropped and the rest joined with a
// single space, so surname markers are tolerated anywhere in the value.
// Slash-free values pass through verbatim, which makes the function
// idempotent on its own output.
func NormalizeName(value string) string {
	if value == "" || !strings.Contains(value, "/") {
		return value
	}

	var segments []string
	for _, seg := range strings.Split(value, "/") {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	return strings.Join(segments, " ")
}
