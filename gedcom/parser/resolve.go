package parser

import "github.com/teranos/kin/gedcom"

// resolveRelationships derives each individual's parents, spouse and
// children from the family graph, in one pass after both maps are built.
//
// Family ids that do not exist in the families map are skipped silently —
// incomplete source data is normal, not an error. Individual ids referenced
// by a family are NOT checked against the individuals map: dangling ids
// flow through to the derived lists verbatim. Repeated family references
// produce repeated entries; only empty-string ids are filtered out.
func resolveRelationships(out *gedcom.Result) {
	for _, ind := range out.Individuals {
		ind.Parents = []string{}
		ind.Spouse = []string{}
		ind.Children = []string{}

		for _, famID := range ind.FamiliesAsChild {
			fam, ok := out.Families[famID]
			if !ok {
				continue
			}
			// Husband before wife, always.
			if fam.Husband != "" {
				ind.Parents = append(ind.Parents, fam.Husband)
			}
			if fam.Wife != "" {
				ind.Parents = append(ind.Parents, fam.Wife)
			}
		}

		for _, famID := range ind.FamiliesAsSpouse {
			fam, ok := out.Families[famID]
			if !ok {
				continue
			}
			switch {
			case fam.Husband == ind.ID && fam.Wife != "":
				ind.Spouse = append(ind.Spouse, fam.Wife)
			case fam.Wife == ind.ID && fam.Husband != "":
				ind.Spouse = append(ind.Spouse, fam.Husband)
			}
			ind.Children = append(ind.Children, fam.Children...)
		}

		ind.Parents = dropEmpty(ind.Parents)
		ind.Spouse = dropEmpty(ind.Spouse)
		ind.Children = dropEmpty(ind.Children)
	}
}

func dropEmpty(ids []string) []string {
	kept := ids[:0]
	for _, id := range ids {
		if id != "" {
			kept = append(kept, id)
		}
	}
	return kept
}
