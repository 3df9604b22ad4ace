// Package gwastools holds small helpers shared by the ingestion and
// filtering tools: delimiter sniffing for consumer genotype exports and
// transparent decompression of downloaded reference files.
package gwastools

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// GenotypeDelimiters are the delimiter candidates seen in raw genotype
// exports: 23andMe ships tab-delimited .txt, AncestryDNA tab or comma, and
// some third-party exports use single spaces.
var GenotypeDelimiters = []rune{'\t', ',', ' '}

// DetermineDelimiter returns the single most likely rune delimiting the
// values in the reader, assuming a CSV-like file. When detection is
// inconclusive it falls back to tab, the dominant delimiter among raw
// genotype vendors.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	for _, cand := range delimiters {
		if cand == "" {
			continue
		}
		for _, known := range GenotypeDelimiters {
			if rune(cand[0]) == known {
				return known
			}
		}
	}

	for _, cand := range delimiters {
		if cand != "" {
			return rune(cand[0])
		}
	}

	return '\t'
}
