// Package query serves read-only lookups and aggregate statistics over a
// resolved gedcom model. The engine never mutates the model; it must not be
// used concurrently with relationship resolution, which the parse pipeline
// completes before handing the result over.
package query

import (
	"strings"

	"github.com/teranos/kin/gedcom"
)

// Engine answers queries over one parsed and resolved result.
type Engine struct {
	data *gedcom.Result
}

// NewEngine wraps a resolved result. The engine keeps a reference, not a
// copy; the caller must not mutate the result afterwards.
func NewEngine(data *gedcom.Result) *Engine {
	return &Engine{data: data}
}

// FindPerson returns every individual whose name contains the query,
// case-insensitively, in source-file declaration order.
func (e *Engine) FindPerson(nameQuery string) []*gedcom.Individual {
	query := strings.ToLower(nameQuery)

	var results []*gedcom.Individual
	for _, id := range e.data.IndividualOrder {
		person := e.data.Individuals[id]
		if strings.Contains(strings.ToLower(person.Name), query) {
			results = append(results, person)
		}
	}
	return results
}

// SearchByLocation returns every individual whose birth or death place
// contains the query, case-insensitively, in declaration order.
func (e *Engine) SearchByLocation(location string) []*gedcom.Individual {
	query := strings.ToLower(location)

	var results []*gedcom.Individual
	for _, id := range e.data.IndividualOrder {
		person := e.data.Individuals[id]
		if strings.Contains(strings.ToLower(person.Birth.Place), query) ||
			strings.Contains(strings.ToLower(person.Death.Place), query) {
			results = append(results, person)
		}
	}
	return results
}

// PersonDetails is an individual augmented with the names of its resolved
// relatives. Linked ids with no matching individual are omitted from the
// name lists.
type PersonDetails struct {
	gedcom.Individual
	ParentNames   []string `json:"parent_names"`
	SpouseNames   []string `json:"spouse_names"`
	ChildrenNames []string `json:"children_names"`
}

// GetPersonDetails returns a copy of the individual with relative names
// resolved, or nil when the id is unknown.
func (e *Engine) GetPersonDetails(id string) *PersonDetails {
	person, ok := e.data.Individuals[id]
	if !ok {
		return nil
	}

	return &PersonDetails{
		Individual:    *person,
		ParentNames:   e.resolveNames(person.Parents),
		SpouseNames:   e.resolveNames(person.Spouse),
		ChildrenNames: e.resolveNames(person.Children),
	}
}

func (e *Engine) resolveNames(ids []string) []string {
	names := []string{}
	for _, id := range ids {
		if person, ok := e.data.Individuals[id]; ok {
			names = append(names, person.Name)
		}
	}
	return names
}
