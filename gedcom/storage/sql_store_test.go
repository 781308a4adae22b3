package storage

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/kin/gedcom"
)

func exportFixture() *gedcom.Result {
	ind := gedcom.NewIndividual("1")
	ind.Name = "John SMITH"
	ind.Gender = "M"
	ind.Birth = gedcom.EventDetail{Date: "01 JAN 1900", Place: "Paris"}
	ind.Notes = []string{"a note"}

	fam := gedcom.NewFamily("1")
	fam.Husband = "1"
	fam.Wife = "2"
	fam.Children = []string{"3", "4"}

	return &gedcom.Result{
		Individuals:     map[string]*gedcom.Individual{"1": ind},
		Families:        map[string]*gedcom.Family{"1": fam},
		IndividualOrder: []string{"1"},
		FamilyOrder:     []string{"1"},
	}
}

func TestSaveResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT OR REPLACE INTO individuals`).
		WithArgs("1", "John SMITH", "M", "", "01 JAN 1900", "Paris", "", "", `["a note"]`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT OR REPLACE INTO families`).
		WithArgs("1", "1", "2", "", "", false, `[]`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT OR REPLACE INTO family_children`).
		WithArgs("1", "3", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT OR REPLACE INTO family_children`).
		WithArgs("1", "4", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	store := NewSQLStore(db, nil)
	require.NoError(t, store.SaveResult(exportFixture()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveResultRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT OR REPLACE INTO individuals`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	store := NewSQLStore(db, nil)
	err = store.SaveResult(exportFixture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert individual")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM individuals`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM families`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	store := NewSQLStore(db, nil)
	individuals, families, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, 12, individuals)
	assert.Equal(t, 5, families)
}
