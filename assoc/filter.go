package assoc

import (
	"os"
	"path/filepath"
	"strings"
)

// Filter reads the association table at path and returns the rows whose
// rsid exactly matches one of rsids. The path must end in .parquet (the
// whole file is materialized and filtered in memory) or .duckdb (the file
// is queried in place through a temp-table join, so very large tables never
// need to fit in memory).
//
// An empty rsids slice short-circuits to an empty result without opening
// the file at all: no schema validation happens on that path. Callers
// probing with an empty list therefore cannot rely on it to detect a
// malformed source.
func Filter(path string, rsids []string) ([]Association, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, newError(CategoryNotFound, "file does not exist: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".parquet", ".duckdb":
	default:
		return nil, newError(CategoryUnsupportedFormat,
			"unsupported file type: %s (only .parquet and .duckdb are supported)", ext)
	}

	if len(rsids) == 0 {
		return []Association{}, nil
	}

	unique := dedupe(rsids)

	if ext == ".parquet" {
		return filterParquet(path, unique)
	}
	return filterDuckDB(path, unique)
}
