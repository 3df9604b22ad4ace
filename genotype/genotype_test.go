package genotype

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad23andMeStyle(t *testing.T) {
	path := writeFixture(t, "raw.txt",
		"# This data file generated by 23andMe\n"+
			"# rsid\tchromosome\tposition\tgenotype\n"+
			"rsid\tchromosome\tposition\tgenotype\n"+
			"rs4477212\t1\t82154\tAA\n"+
			"rs3094315\t1\t752566\tAG\n"+
			"rs9999999\t1\t800000\t--\n")

	calls, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 3 {
		t.Fatalf("got %d calls, want 3", len(calls))
	}
	if calls[0].RSID != "rs4477212" || calls[0].Genotype != "AA" {
		t.Errorf("first call mismatch: %+v", calls[0])
	}
	// "--" is a valid no-call string and must come through untouched.
	if calls[2].Genotype != "--" {
		t.Errorf("no-call genotype altered: %+v", calls[2])
	}
}

func TestLoadAncestryAlleleColumns(t *testing.T) {
	path := writeFixture(t, "ancestry.txt",
		"#AncestryDNA raw data download\n"+
			"rsid\tchromosome\tposition\tallele1\tallele2\n"+
			"rs3131972\t1\t752721\tA\tG\n"+
			"rs12562034\t1\t768448\tG\tG\n")

	calls, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 {
		t.Fatalf("got %d calls, want 2", len(calls))
	}
	if calls[0].Genotype != "AG" || calls[1].Genotype != "GG" {
		t.Errorf("allele concatenation wrong: %+v", calls)
	}
}

func TestLoadCommaDelimited(t *testing.T) {
	path := writeFixture(t, "raw.csv",
		"RSID,Genotype\n"+
			"rs123,CT\n"+
			"rs456,TT\n")

	calls, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 || calls[0].RSID != "rs123" || calls[0].Genotype != "CT" {
		t.Errorf("unexpected calls: %+v", calls)
	}
}

func TestLoadDropsIncompleteRows(t *testing.T) {
	path := writeFixture(t, "gaps.csv",
		"rsid,genotype\n"+
			"rs1,AA\n"+
			",CC\n"+
			"rs3,\n")

	calls, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 1 || calls[0].RSID != "rs1" {
		t.Errorf("incomplete rows not dropped: %+v", calls)
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeFixture(t, "odd.csv", "variant,call\nrs1,AA\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "rsid") {
		t.Errorf("error does not name missing column: %v", err)
	}
}

func TestLoadNoValidRows(t *testing.T) {
	path := writeFixture(t, "empty.csv", "rsid,genotype\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "no valid genotype data") {
		t.Errorf("got %v, want no-valid-data error", err)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFixture(t, "raw.vcf", "rsid\tgenotype\nrs1\tAA\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("got %v, want unsupported-file-type error", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil || !strings.Contains(err.Error(), "file not found") {
		t.Errorf("got %v, want file-not-found error", err)
	}
}
