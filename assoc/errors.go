package assoc

import (
	"fmt"
)

// Category classifies a filter failure. Every failure is fatal to the call;
// categories exist so callers can distinguish user mistakes (bad path, wrong
// extension) from broken source files.
type Category string

const (
	// CategoryNotFound: the source path does not exist.
	CategoryNotFound Category = "not_found"

	// CategoryUnsupportedFormat: the extension is neither .parquet nor
	// .duckdb.
	CategoryUnsupportedFormat Category = "unsupported_format"

	// CategoryLoadFailure: the backend failed to open, read or query the
	// source; the underlying error is wrapped.
	CategoryLoadFailure Category = "load_failure"

	// CategoryMissingColumns: the source loaded but lacks required columns.
	CategoryMissingColumns Category = "missing_columns"

	// CategoryNoTables: a .duckdb source contains no tables at all.
	CategoryNoTables Category = "no_tables"
)

// Error is the single error kind surfaced by Filter. Match the category
// with errors.Is against the sentinels below, or errors.As to read the
// message and cause directly.
type Error struct {
	Category Category
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports category equality so that errors.Is(err, ErrMissingColumns)
// works without the caller comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Category == e.Category
}

// Sentinels for errors.Is matching. Their messages are never shown; real
// errors are built with the constructors below.
var (
	ErrNotFound          = &Error{Category: CategoryNotFound}
	ErrUnsupportedFormat = &Error{Category: CategoryUnsupportedFormat}
	ErrLoadFailure       = &Error{Category: CategoryLoadFailure}
	ErrMissingColumns    = &Error{Category: CategoryMissingColumns}
	ErrNoTables          = &Error{Category: CategoryNoTables}
)

func newError(cat Category, format string, args ...interface{}) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...)}
}

func wrapError(cat Category, cause error, format string, args ...interface{}) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...), Cause: cause}
}
