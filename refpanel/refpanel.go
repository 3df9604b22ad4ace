// Package refpanel fetches the gnomAD HGDP+1kG reference-panel sample
// metadata and loads it into the local DuckDB store. Every step is
// skip-if-done so the ingest can be re-run after a partial failure.
package refpanel

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"

	"github.com/phite-bio/gwastools"

	_ "github.com/marcboeker/go-duckdb"
)

// MetadataURL is the published gnomAD v3.1.2 HGDP+1kG subset sample
// metadata (bgzipped TSV).
const MetadataURL = "https://storage.googleapis.com/gcp-public-data--gnomad/release/3.1.2/vcf/genomes/gnomad.genomes.v3.1.2.hgdp_1kg_subset_sample_meta.tsv.bgz"

// TableName is the DuckDB table the metadata lands in.
const TableName = "reference_panel"

// Download streams url to dest, skipping the download when dest already
// exists. There is no retry or resume: a failed download leaves no file
// behind and the next run starts over.
func Download(ctx context.Context, url, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		log.Println("File already exists, skipping:", dest)
		return nil
	}

	log.Println("Downloading", url, "->", dest)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return pfx.Err(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return pfx.Err(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return pfx.Err(fmt.Errorf("GET %s: %s", url, resp.Status))
	}

	tmp := dest + ".partial"
	out, err := os.Create(tmp)
	if err != nil {
		return pfx.Err(err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmp)
		return pfx.Err(err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return pfx.Err(err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return pfx.Err(err)
	}

	log.Println("Download complete:", dest)
	return nil
}

// Decompress writes the decompressed content of src to dest, skipping the
// work when dest already exists. Compression is sniffed from the file
// itself, so plain, gzip and bgzip inputs all work.
func Decompress(src, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		log.Println("Already decompressed, skipping:", dest)
		return nil
	}

	f, err := os.Open(src)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	r, err := gwastools.MaybeDecompress(f)
	if err != nil {
		return pfx.Err(err)
	}
	defer r.Close()

	tmp := dest + ".partial"
	out, err := os.Create(tmp)
	if err != nil {
		return pfx.Err(err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(tmp)
		return pfx.Err(err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return pfx.Err(err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// Ingest loads the metadata TSV into TableName of the DuckDB database at
// dbPath. The table is created from the TSV on first run; later runs clear
// and repopulate it, so the ingest is idempotent.
func Ingest(dbPath, tsvPath string) error {
	db, err := sqlx.Connect("duckdb", dbPath)
	if err != nil {
		return pfx.Err(err)
	}
	defer db.Close()

	var exists bool
	if err := db.Get(&exists,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = ?)`, TableName); err != nil {
		return pfx.Err(err)
	}

	// The TSV is parsed by DuckDB itself; the rows never round-trip
	// through Go. Table functions do not take bound parameters, so the
	// path goes in as an escaped literal. The delimiter and header must be
	// explicit: with every column VARCHAR, sniffing cannot tell the header
	// line from data and would ingest it as a row.
	src := fmt.Sprintf("read_csv('%s', delim='\t', header=true)",
		strings.ReplaceAll(tsvPath, "'", "''"))

	if !exists {
		log.Println("Creating table", TableName, "from", tsvPath)
		if _, err := db.Exec(fmt.Sprintf(`CREATE TABLE %s AS SELECT * FROM %s`, TableName, src)); err != nil {
			return pfx.Err(err)
		}
		return nil
	}

	log.Println("Reloading table", TableName, "from", tsvPath)
	if _, err := db.Exec(fmt.Sprintf(`DELETE FROM %s`, TableName)); err != nil {
		return pfx.Err(err)
	}
	if _, err := db.Exec(fmt.Sprintf(`INSERT INTO %s SELECT * FROM %s`, TableName, src)); err != nil {
		return pfx.Err(err)
	}
	return nil
}
