// Package storage persists a parsed GEDCOM model into SQLite. It handles
// database persistence, JSON serialization of note sequences, and the
// queries the export command uses to report on the saved model.
package storage

import (
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/teranos/kin/errors"
	"github.com/teranos/kin/gedcom"
)

// Query constants
const (
	IndividualInsertQuery = `
		INSERT OR REPLACE INTO individuals (id, name, gender, occupation, birth_date, birth_place, death_date, death_place, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	FamilyInsertQuery = `
		INSERT OR REPLACE INTO families (id, husband_id, wife_id, marriage_date, marriage_place, divorced, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	FamilyChildInsertQuery = `
		INSERT OR REPLACE INTO family_children (family_id, child_id, position)
		VALUES (?, ?, ?)`

	IndividualCountQuery = `SELECT COUNT(*) FROM individuals`
	FamilyCountQuery     = `SELECT COUNT(*) FROM families`
)

// SQLStore writes parsed genealogy data into an opened, migrated database.
type SQLStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewSQLStore creates a store over an opened database. The logger may be
// nil for silent operation.
func NewSQLStore(db *sql.DB, logger *zap.SugaredLogger) *SQLStore {
	return &SQLStore{db: db, logger: logger}
}

// SaveResult writes every individual and family in one transaction,
// replacing rows that share an id with a previous export. Derived
// relationship lists are not stored: they are reproducible from the family
// rows, which are the source of truth.
func (s *SQLStore) SaveResult(result *gedcom.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin export transaction")
	}

	for _, id := range result.IndividualOrder {
		if err := insertIndividual(tx, result.Individuals[id]); err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, id := range result.FamilyOrder {
		if err := insertFamily(tx, result.Families[id]); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit export transaction")
	}

	if s.logger != nil {
		s.logger.Infow("Export complete",
			"individuals", len(result.Individuals),
			"families", len(result.Families),
		)
	}
	return nil
}

func insertIndividual(tx *sql.Tx, ind *gedcom.Individual) error {
	notesJSON, err := json.Marshal(ind.Notes)
	if err != nil {
		return errors.Wrapf(err, "marshal notes for individual %s", ind.ID)
	}

	_, err = tx.Exec(IndividualInsertQuery,
		ind.ID,
		ind.Name,
		ind.Gender,
		ind.Occupation,
		ind.Birth.Date,
		ind.Birth.Place,
		ind.Death.Date,
		ind.Death.Place,
		string(notesJSON),
	)
	if err != nil {
		return errors.Wrapf(err, "insert individual %s", ind.ID)
	}
	return nil
}

func insertFamily(tx *sql.Tx, fam *gedcom.Family) error {
	notesJSON, err := json.Marshal(fam.Notes)
	if err != nil {
		return errors.Wrapf(err, "marshal notes for family %s", fam.ID)
	}

	_, err = tx.Exec(FamilyInsertQuery,
		fam.ID,
		fam.Husband,
		fam.Wife,
		fam.Marriage.Date,
		fam.Marriage.Place,
		fam.Divorced,
		string(notesJSON),
	)
	if err != nil {
		return errors.Wrapf(err, "insert family %s", fam.ID)
	}

	for position, childID := range fam.Children {
		if _, err := tx.Exec(FamilyChildInsertQuery, fam.ID, childID, position); err != nil {
			return errors.Wrapf(err, "insert child %s of family %s", childID, fam.ID)
		}
	}
	return nil
}

// Counts returns how many individuals and families the database holds.
func (s *SQLStore) Counts() (individuals, families int, err error) {
	if err := s.db.QueryRow(IndividualCountQuery).Scan(&individuals); err != nil {
		return 0, 0, errors.Wrap(err, "count individuals")
	}
	if err := s.db.QueryRow(FamilyCountQuery).Scan(&families); err != nil {
		return 0, 0, errors.Wrap(err, "count families")
	}
	return individuals, families, nil
}
