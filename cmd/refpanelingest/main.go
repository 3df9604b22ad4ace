// refpanelingest downloads the gnomAD HGDP+1kG sample metadata, decompresses
// it, and loads it into the reference_panel table of a local DuckDB
// database. Each step skips work that is already done, so the command is
// safe to rerun.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/phite-bio/gwastools/refpanel"
)

func main() {
	var dbPath, dataDir, url string

	flag.StringVar(&dbPath, "db", "gwas.duckdb", "Path to the DuckDB database")
	flag.StringVar(&dataDir, "dir", "data", "Directory for the downloaded metadata files")
	flag.StringVar(&url, "url", refpanel.MetadataURL, "URL of the bgzipped sample-metadata TSV")
	flag.Parse()

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalln(err)
	}

	compressed := filepath.Join(dataDir, filepath.Base(url))
	tsv := strings.TrimSuffix(compressed, ".bgz")

	if err := refpanel.Download(context.Background(), url, compressed); err != nil {
		log.Fatalln(err)
	}
	if err := refpanel.Decompress(compressed, tsv); err != nil {
		log.Fatalln(err)
	}
	if err := refpanel.Ingest(dbPath, tsv); err != nil {
		log.Fatalln(err)
	}

	log.Println("Ingestion complete")
}
