package assoc

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// parquetReadBatch is the number of rows decoded per Read call. Purely a
// buffer size; the whole file is materialized either way.
const parquetReadBatch = 1024

// filterParquet loads the full parquet file and keeps the rows whose rsid
// is in rsids, preserving file row order. rsids must already be
// de-duplicated and non-empty.
func filterParquet(path string, rsids []string) ([]Association, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to load GWAS file %s", path)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to load GWAS file %s", path)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to load GWAS file %s", path)
	}

	present := make(map[string]bool)
	for _, field := range pf.Schema().Fields() {
		present[field.Name()] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, newError(CategoryMissingColumns,
			"missing required columns: %s", strings.Join(missing, ", "))
	}

	want := make(map[string]bool, len(rsids))
	for _, id := range rsids {
		want[id] = true
	}

	reader := parquet.NewGenericReader[Association](f)
	defer reader.Close()

	out := []Association{}
	buf := make([]Association, parquetReadBatch)
	for {
		n, err := reader.Read(buf)
		for _, row := range buf[:n] {
			if want[row.RSID] {
				out = append(out, row)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapError(CategoryLoadFailure, err, "failed to read GWAS file %s", path)
		}
	}

	return out, nil
}
