// Package genotype loads consumer raw genotype exports (23andMe,
// AncestryDNA and compatible third-party formats) into rsid/genotype calls.
package genotype

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/phite-bio/gwastools"
)

// Call is one genotyped variant from a raw export. Genotype is the call
// string exactly as the vendor wrote it (e.g. "AG", "--"); no normalization
// is applied to either field.
type Call struct {
	RSID     string `csv:"rsid"`
	Genotype string `csv:"genotype"`
}

// Load parses the raw genotype file at path. The delimiter is sniffed
// (vendors disagree between tab, comma and space), `#` comment lines are
// skipped, and the header is matched case-insensitively. AncestryDNA-style
// files carry allele1/allele2 columns instead of a combined genotype; the
// two alleles are concatenated in column order. Rows missing the rsid or
// the call are dropped; a file with no surviving rows is an error.
func Load(path string) ([]Call, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" && ext != ".csv" {
		return nil, fmt.Errorf("unsupported file type: %s (only .txt and .csv are supported)", ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var missing []string
	for _, delim := range candidateDelimiters(raw) {
		calls, missingCols, err := parse(raw, delim)
		if err != nil {
			continue
		}
		if len(missingCols) > 0 {
			if missing == nil || len(missingCols) < len(missing) {
				missing = missingCols
			}
			continue
		}
		if len(calls) == 0 {
			return nil, fmt.Errorf("no valid genotype data found after filtering")
		}
		return calls, nil
	}

	if missing != nil {
		return nil, fmt.Errorf("input file is missing required column(s): %s", strings.Join(missing, ", "))
	}
	return nil, fmt.Errorf("could not parse file with expected delimiters")
}

// candidateDelimiters puts the sniffed delimiter first, then the remaining
// vendor candidates in their usual order.
func candidateDelimiters(raw []byte) []rune {
	sniffed := gwastools.DetermineDelimiter(bytes.NewReader(stripComments(raw)))

	out := []rune{sniffed}
	for _, d := range gwastools.GenotypeDelimiters {
		if d != sniffed {
			out = append(out, d)
		}
	}
	return out
}

// stripComments drops the vendor preamble so the sniffer only sees data
// lines.
func stripComments(raw []byte) []byte {
	var b bytes.Buffer
	for _, line := range bytes.Split(raw, []byte{'\n'}) {
		if len(bytes.TrimSpace(line)) == 0 || bytes.HasPrefix(line, []byte{'#'}) {
			continue
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// parse reads raw with the given delimiter. It returns the calls, or the
// required columns absent from the header, or a read error when the file is
// not consistent CSV under this delimiter.
func parse(raw []byte, delim rune) ([]Call, []string, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = delim
	r.Comment = '#'
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(name)] = i
	}

	rsidCol, hasRSID := cols["rsid"]
	genoCol, hasGeno := cols["genotype"]
	a1Col, hasA1 := cols["allele1"]
	a2Col, hasA2 := cols["allele2"]

	var missing []string
	if !hasRSID {
		missing = append(missing, "rsid")
	}
	if !hasGeno && !(hasA1 && hasA2) {
		missing = append(missing, "genotype")
	}
	if len(missing) > 0 {
		return nil, missing, nil
	}

	var calls []Call
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		c := Call{RSID: record[rsidCol]}
		if hasGeno {
			c.Genotype = record[genoCol]
		} else {
			c.Genotype = record[a1Col] + record[a2Col]
		}
		if c.RSID == "" || c.Genotype == "" {
			continue
		}
		calls = append(calls, c)
	}

	return calls, nil, nil
}
