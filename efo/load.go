package efo

import (
	"log"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"

	_ "github.com/marcboeker/go-duckdb"
)

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS efo_term (
		uri VARCHAR PRIMARY KEY,
		label VARCHAR,
		definition VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS efo_synonym (
		uri VARCHAR,
		synonym VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS efo_relationship (
		subject VARCHAR,
		predicate VARCHAR,
		object VARCHAR
	)`,
}

// Load writes doc into the DuckDB database at dbPath, creating the three
// ontology tables when absent. Terms upsert on URI; synonyms and
// relationships append.
func Load(dbPath string, doc *Document) error {
	db, err := sqlx.Connect("duckdb", dbPath)
	if err != nil {
		return pfx.Err(err)
	}
	defer db.Close()

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return pfx.Err(err)
		}
	}

	tx, err := db.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	termStmt, err := tx.Preparex(`INSERT OR REPLACE INTO efo_term (uri, label, definition) VALUES (?, ?, ?)`)
	if err != nil {
		return pfx.Err(err)
	}
	defer termStmt.Close()
	for _, t := range doc.Terms {
		if _, err := termStmt.Exec(t.URI, t.Label, t.Definition); err != nil {
			return pfx.Err(err)
		}
	}

	synStmt, err := tx.Preparex(`INSERT INTO efo_synonym (uri, synonym) VALUES (?, ?)`)
	if err != nil {
		return pfx.Err(err)
	}
	defer synStmt.Close()
	for _, s := range doc.Synonyms {
		if _, err := synStmt.Exec(s.URI, s.Synonym); err != nil {
			return pfx.Err(err)
		}
	}

	relStmt, err := tx.Preparex(`INSERT INTO efo_relationship (subject, predicate, object) VALUES (?, ?, ?)`)
	if err != nil {
		return pfx.Err(err)
	}
	defer relStmt.Close()
	for _, r := range doc.Relationships {
		if _, err := relStmt.Exec(r.Subject, r.Predicate, r.Object); err != nil {
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	log.Printf("Loaded %d terms, %d synonyms, %d relationships into %s",
		len(doc.Terms), len(doc.Synonyms), len(doc.Relationships), dbPath)

	return nil
}
