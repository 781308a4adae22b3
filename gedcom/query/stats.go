package query

import (
	"fmt"
	"strconv"
)

// Statistics aggregates counts over the whole model.
type Statistics struct {
	TotalIndividuals       int            `json:"total_individuals"`
	TotalFamilies          int            `json:"total_families"`
	GenderDistribution     map[string]int `json:"gender_distribution"`
	OccupationDistribution map[string]int `json:"occupation_distribution"`
	CenturyDistribution    map[string]int `json:"century_distribution"`
	LivingPeople           int            `json:"living_people"`
}

// GetStatistics computes aggregate statistics: totals, gender buckets
// (anything other than M or F counts as Unknown), occupation frequencies,
// birth centuries derived from the last four characters of the birth date,
// and a living count of individuals with no recorded death date.
func (e *Engine) GetStatistics() *Statistics {
	stats := &Statistics{
		TotalIndividuals:       len(e.data.Individuals),
		TotalFamilies:          len(e.data.Families),
		GenderDistribution:     map[string]int{"M": 0, "F": 0, "Unknown": 0},
		OccupationDistribution: map[string]int{},
		CenturyDistribution:    map[string]int{},
	}

	for _, person := range e.data.Individuals {
		switch person.Gender {
		case "M", "F":
			stats.GenderDistribution[person.Gender]++
		default:
			stats.GenderDistribution["Unknown"]++
		}

		if person.Occupation != "" {
			stats.OccupationDistribution[person.Occupation]++
		}

		// Birth dates end in the year ("01 JAN 1900"); short or
		// non-numeric tails are skipped without complaint.
		if date := person.Birth.Date; len(date) >= 4 {
			if year, err := strconv.Atoi(date[len(date)-4:]); err == nil {
				century := fmt.Sprintf("%dth century", year/100+1)
				stats.CenturyDistribution[century]++
			}
		}

		if person.Death.Date == "" {
			stats.LivingPeople++
		}
	}

	return stats
}
