package gedcom

import "time"

// EventDetail holds the date and place of a life event (birth, death,
// marriage). Both fields stay empty until a corresponding DATE or PLAC
// line populates them.
type EventDetail struct {
	Date  string `json:"date,omitempty"`
	Place string `json:"place,omitempty"`
}

// Individual is one person record. Ids are the numeric part of the GEDCOM
// pointer (@I42@ -> "42"). Parents, Spouse and Children are derived fields:
// they are empty until relationship resolution runs and carry whatever the
// family graph references, including ids with no matching individual record.
type Individual struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Gender           string      `json:"gender"`
	Birth            EventDetail `json:"birth"`
	Death            EventDetail `json:"death"`
	Occupation       string      `json:"occupation"`
	Notes            []string    `json:"notes"`
	FamiliesAsChild  []string    `json:"families_as_child"`
	FamiliesAsSpouse []string    `json:"families_as_spouse"`
	Media            []string    `json:"media"`

	// Derived by Resolve; empty until then.
	Parents  []string `json:"parents"`
	Spouse   []string `json:"spouse"`
	Children []string `json:"children"`
}

// Family is one union record linking at most one husband, one wife and any
// number of children. Husband and wife are individual ids or "" for no value.
type Family struct {
	ID       string      `json:"id"`
	Marriage EventDetail `json:"marriage"`
	Husband  string      `json:"husband"`
	Wife     string      `json:"wife"`
	Children []string    `json:"children"`
	Notes    []string    `json:"notes"`
	Divorced bool        `json:"divorced"`
}

// Summary describes one parse run. Error is set only when the whole parse
// failed and degraded to empty maps.
type Summary struct {
	TotalIndividuals int       `json:"total_individuals"`
	TotalFamilies    int       `json:"total_families"`
	ParsedAt         time.Time `json:"parsed_at"`
	Error            string    `json:"error,omitempty"`
}

// Result is the complete parsed model handed to the query engine and to
// JSON serialization. Individuals and Families are keyed by extracted id.
// The maps are built once per parse and, after resolution, only read.
type Result struct {
	Individuals map[string]*Individual `json:"individuals"`
	Families    map[string]*Family     `json:"families"`
	Summary     Summary                `json:"summary"`

	// Insertion order of records, so queries iterate deterministically
	// in the order the source file declared them.
	IndividualOrder []string `json:"-"`
	FamilyOrder     []string `json:"-"`
}

// NewIndividual returns an individual with all sequence fields allocated,
// matching the serialized shape of a record that accumulated nothing.
func NewIndividual(id string) *Individual {
	return &Individual{
		ID:               id,
		Notes:            []string{},
		FamiliesAsChild:  []string{},
		FamiliesAsSpouse: []string{},
		Media:            []string{},
	}
}

// NewFamily returns a family with all sequence fields allocated.
func NewFamily(id string) *Family {
	return &Family{
		ID:       id,
		Children: []string{},
		Notes:    []string{},
	}
}
