// Package gedcom defines the relational model produced from GEDCOM files.
//
// A GEDCOM file is a line-oriented, level-tagged hierarchical text format
// for genealogical data. Parsing (see gedcom/parser) turns it into two maps
// keyed by extracted record ids — individuals and families — plus a summary.
// Cross-record links (parents, spouse, children) are derived by a resolution
// pass over raw family membership references; the query engine
// (see gedcom/query) serves lookups and statistics over the resolved model.
//
// Only the tag subset the model consumes is supported: record markers, name,
// sex, occupation, birth/death date+place, family membership, notes, a file
// reference per media object, marriage date/place, divorce/separation flags,
// and spouse/child references. Round-tripping back to GEDCOM text is not.
package gedcom
