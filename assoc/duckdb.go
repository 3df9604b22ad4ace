package assoc

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/marcboeker/go-duckdb"
)

// preferredTable is queried when present; otherwise the first table the
// database reports is used.
const preferredTable = "associations_clean"

// InsertBatchSize bounds how many identifiers go into the temp filter table
// per INSERT statement. Large identifier lists must never be sent as one
// statement: DuckDB is fine with multi-megabyte SQL but other layers are
// not, and the bound keeps per-statement memory flat.
const InsertBatchSize = 50000

// filterDuckDB queries the database in place: the identifiers are staged
// into a session temp table in batches and inner-joined against the
// association table, so neither the identifier list nor the association
// table is ever materialized wholesale. rsids must already be de-duplicated
// and non-empty.
func filterDuckDB(path string, rsids []string) ([]Association, error) {
	db, err := sqlx.Connect("duckdb", path+"?access_mode=read_only")
	if err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to load GWAS file %s", path)
	}
	// Closing the pool tears down the session and with it the temp table,
	// on success and failure alike.
	defer db.Close()

	ctx := context.Background()

	// All work happens on one pinned connection: DuckDB temp tables are
	// session-scoped and the pool must not rotate us off the session that
	// owns filter_rsid.
	conn, err := db.Connx(ctx)
	if err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to load GWAS file %s", path)
	}
	defer conn.Close()

	var tables []string
	if err := conn.SelectContext(ctx, &tables, `SHOW TABLES`); err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to list tables in %s", path)
	}
	if len(tables) == 0 {
		return nil, newError(CategoryNoTables, "no tables found in DuckDB file %s", path)
	}
	table := tables[0]
	for _, t := range tables {
		if t == preferredTable {
			table = preferredTable
			break
		}
	}

	var cols []string
	if err := conn.SelectContext(ctx, &cols,
		`SELECT column_name FROM information_schema.columns WHERE table_name = ?`, table); err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to read schema of table %s", table)
	}
	present := make(map[string]bool, len(cols))
	for _, c := range cols {
		present[c] = true
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

	if _, err := conn.ExecContext(ctx, `CREATE TEMP TABLE filter_rsid (rsid VARCHAR)`); err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to create temp filter table")
	}

	for start := 0; start < len(rsids); start += InsertBatchSize {
		end := start + InsertBatchSize
		if end > len(rsids) {
			end = len(rsids)
		}
		if _, err := conn.ExecContext(ctx, insertBatchSQL(rsids[start:end])); err != nil {
			return nil, wrapError(CategoryLoadFailure, err, "failed to stage identifiers")
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM %s a INNER JOIN filter_rsid f ON a.rsid = f.rsid`,
		selectColumns("a"), quoteIdent(table))

	out := []Association{}
	rows, err := conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to query table %s", table)
	}
	defer rows.Close()
	for rows.Next() {
		var a Association
		if err := rows.StructScan(&a); err != nil {
			return nil, wrapError(CategoryLoadFailure, err, "failed to scan row from table %s", table)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError(CategoryLoadFailure, err, "failed to read rows from table %s", table)
	}

	return out, nil
}

// insertBatchSQL renders one bounded INSERT with the identifiers as quoted
// string literals. Identifiers are matched byte-for-byte, so the only
// escaping needed is doubling embedded single quotes.
func insertBatchSQL(rsids []string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO filter_rsid VALUES ")
	for i, id := range rsids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("('")
		b.WriteString(strings.ReplaceAll(id, "'", "''"))
		b.WriteString("')")
	}
	return b.String()
}

func selectColumns(alias string) string {
	quoted := make([]string, len(RequiredColumns))
	for i, col := range RequiredColumns {
		quoted[i] = alias + "." + col
	}
	return strings.Join(quoted, ", ")
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
