// gwasq filters a GWAS association table (.parquet or .duckdb) down to the
// variants in an rsid list or in a consumer raw genotype export, and writes
// the matching rows as tab-delimited text.
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/phite-bio/gwastools/assoc"
	"github.com/phite-bio/gwastools/genotype"
)

func main() {
	var gwasPath, rsidPath, genotypePath, outPath string

	flag.StringVar(&gwasPath, "gwas", "", "Path to the GWAS association table (.parquet or .duckdb)")
	flag.StringVar(&rsidPath, "rsids", "", "Path to a file with one rsid per line")
	flag.StringVar(&genotypePath, "genotype", "", "Path to a raw genotype export (.txt or .csv); its rsids become the filter list")
	flag.StringVar(&outPath, "out", "", "Output TSV path (default: stdout)")
	flag.Parse()

	if gwasPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --gwas")
	}
	if (rsidPath == "") == (genotypePath == "") {
		flag.PrintDefaults()
		log.Fatalln("Please provide exactly one of --rsids or --genotype")
	}

	rsids, err := loadRSIDs(rsidPath, genotypePath)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Filtering", gwasPath, "for", len(rsids), "identifiers")

	rows, err := assoc.Filter(gwasPath, rsids)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Matched", len(rows), "association rows")

	out := os.Stdout
	if outPath != "" {
		out, err = os.Create(outPath)
		if err != nil {
			log.Fatalln(err)
		}
		defer out.Close()
	}

	if err := writeTSV(out, rows); err != nil {
		log.Fatalln(err)
	}
}

func loadRSIDs(rsidPath, genotypePath string) ([]string, error) {
	if genotypePath != "" {
		calls, err := genotype.Load(genotypePath)
		if err != nil {
			return nil, err
		}
		rsids := make([]string, len(calls))
		for i, c := range calls {
			rsids[i] = c.RSID
		}
		return rsids, nil
	}

	f, err := os.Open(rsidPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rsids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rsids = append(rsids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rsids) == 0 {
		return nil, fmt.Errorf("no rsids found in %s", rsidPath)
	}
	return rsids, nil
}

func writeTSV(w io.Writer, rows []assoc.Association) error {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = '\t'
		return gocsv.NewSafeCSVWriter(writer)
	})

	return gocsv.Marshal(&rows, w)
}
