// efoload parses an EFO ontology file (RDF/XML) and loads its terms,
// synonyms and subclass relationships into a local DuckDB database.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phite-bio/gwastools/efo"
)

func main() {
	var owlPath, dbPath string

	flag.StringVar(&owlPath, "owl", "efo.owl", "Path to the EFO OWL file")
	flag.StringVar(&dbPath, "db", "gwas.duckdb", "Path to the DuckDB database")
	flag.Parse()

	if _, err := os.Stat(owlPath); os.IsNotExist(err) {
		log.Fatalln(owlPath, "not found")
	}

	doc, err := efo.ParseOWL(owlPath)
	if err != nil {
		log.Fatalln(err)
	}

	if err := efo.Load(dbPath, doc); err != nil {
		log.Fatalln(err)
	}
}
