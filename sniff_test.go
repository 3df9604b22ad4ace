package gwastools

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetermineDelimiter(t *testing.T) {
	cases := map[string]rune{
		"rsid\tchromosome\tposition\tgenotype\nrs1\t1\t100\tAA\nrs2\t1\t200\tAG\n": '\t',
		"rsid,chromosome,position,genotype\nrs1,1,100,AA\nrs2,1,200,AG\n":          ',',
	}
	for sample, want := range cases {
		if got := DetermineDelimiter(strings.NewReader(sample)); got != want {
			t.Errorf("got %q, want %q for sample %q", got, want, sample)
		}
	}
}

func TestDetermineDelimiterFallback(t *testing.T) {
	if got := DetermineDelimiter(strings.NewReader("")); got != '\t' {
		t.Errorf("got %q, want tab fallback", got)
	}
}

func TestDetectCompression(t *testing.T) {
	if c, err := DetectCompression(strings.NewReader("rsid\tgenotype\nrs1\tAA\n")); err != nil || c != CompressionNone {
		t.Errorf("got %v, %v; want CompressionNone", c, err)
	}

	var b strings.Builder
	zw := gzip.NewWriter(&b)
	zw.Write([]byte("payload"))
	zw.Close()
	if c, err := DetectCompression(strings.NewReader(b.String())); err != nil || c != CompressionGzip {
		t.Errorf("got %v, %v; want CompressionGzip", c, err)
	}
}

func TestMaybeDecompressGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv.bgz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	zw.Write([]byte("sample_id\tpopulation\n"))
	zw.Close()
	f.Close()

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	r, err := MaybeDecompress(in)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "sample_id\tpopulation\n" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestMaybeDecompressPassthrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	if err := os.WriteFile(path, []byte("sample_id\tpopulation\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	r, err := MaybeDecompress(in)
	if err != nil {
		t.Fatal(err)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "sample_id\tpopulation\n" {
		t.Errorf("unexpected content: %q", content)
	}
}
