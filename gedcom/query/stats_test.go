package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStatistics(t *testing.T) {
	engine := NewEngine(fixtureModel())

	stats := engine.GetStatistics()

	assert.Equal(t, 4, stats.TotalIndividuals)
	assert.Equal(t, 1, stats.TotalFamilies)

	// Gender "X" buckets to Unknown.
	assert.Equal(t, map[string]int{"M": 2, "F": 1, "Unknown": 1}, stats.GenderDistribution)

	// Empty occupations are not counted.
	assert.Equal(t, map[string]int{"Baker": 2}, stats.OccupationDistribution)

	// Years come from the last four characters of the birth date:
	// 1890, 1895, 1925, 1900 -> 19th/19th/20th/20th.
	assert.Equal(t, map[string]int{"19th century": 2, "20th century": 2}, stats.CenturyDistribution)

	// Only the father has a death date.
	assert.Equal(t, 3, stats.LivingPeople)
}

func TestGetStatisticsSkipsUnparseableBirthYears(t *testing.T) {
	model := fixtureModel()
	model.Individuals["1"].Birth.Date = "unknown date"
	model.Individuals["2"].Birth.Date = "189" // too short

	stats := NewEngine(model).GetStatistics()
	assert.Equal(t, map[string]int{"20th century": 2}, stats.CenturyDistribution)
}
