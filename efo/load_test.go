package efo

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

func TestLoad(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "gwas.duckdb")

	doc := &Document{
		Terms: []Term{
			{URI: "http://www.ebi.ac.uk/efo/EFO_1", Label: "one", Definition: "first"},
			{URI: "http://www.ebi.ac.uk/efo/EFO_2", Label: "two"},
		},
		Synonyms: []Synonym{
			{URI: "http://www.ebi.ac.uk/efo/EFO_1", Synonym: "uno"},
		},
		Relationships: []Relationship{
			{Subject: "http://www.ebi.ac.uk/efo/EFO_1", Predicate: "subClassOf", Object: "http://www.ebi.ac.uk/efo/EFO_2"},
		},
	}

	if err := Load(dbPath, doc); err != nil {
		t.Fatal(err)
	}
	// Terms upsert on URI, so a reload must not grow efo_term.
	if err := Load(dbPath, doc); err != nil {
		t.Fatal(err)
	}

	db, err := sqlx.Connect("duckdb", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var terms int
	if err := db.Get(&terms, `SELECT COUNT(*) FROM efo_term`); err != nil {
		t.Fatal(err)
	}
	if terms != 2 {
		t.Errorf("got %d terms after reload, want 2", terms)
	}

	var label string
	if err := db.Get(&label, `SELECT label FROM efo_term WHERE uri = ?`, "http://www.ebi.ac.uk/efo/EFO_1"); err != nil {
		t.Fatal(err)
	}
	if label != "one" {
		t.Errorf("got label %q, want %q", label, "one")
	}
}
