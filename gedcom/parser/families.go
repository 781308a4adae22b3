package parser

import "github.com/teranos/kin/gedcom"

// extractFamilies runs the family-mode pass over the tokenized stream.
// Unlike the individual pass there is no section state: while a family is
// open, level-2 DATE/PLAC lines always target the marriage record, whatever
// level-1 tag preceded them.
func extractFamilies(lines []string, out *gedcom.Result) {
	var current *gedcom.Family

	commit := func() {
		if current == nil {
			return
		}
		if _, seen := out.Families[current.ID]; !seen {
			out.FamilyOrder = append(out.FamilyOrder, current.ID)
		}
		out.Families[current.ID] = current
	}

	for _, raw := range lines {
		l, ok := tokenize(raw)
		if !ok {
			continue
		}

		if l.level == 0 && l.value == "FAM" {
			commit()
			current = gedcom.NewFamily(stripPointer(l.tag, "F"))
			continue
		}

		if current == nil {
			continue
		}

		switch l.level {
		case 1:
			familyTag(current, l)
		case 2:
			eventTag(&current.Marriage, l)
		}
	}

	commit()
}

func familyTag(fam *gedcom.Family, l line) {
	switch l.tag {
	case "MARR":
		// Marker only; the following DATE/PLAC lines carry the data.
	case "DIV", "SEP":
		fam.Divorced = true
	case "HUSB":
		fam.Husband = stripPointer(l.value, "I")
	case "WIFE":
		fam.Wife = stripPointer(l.value, "I")
	case "CHIL":
		if id := stripPointer(l.value, "I"); id != "" {
			fam.Children = append(fam.Children, id)
		}
	case "NOTE":
		if l.value != "" {
			fam.Notes = append(fam.Notes, l.value)
		}
	}
}
