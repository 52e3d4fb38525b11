package hashtable

import "github.com/hupe1980/parsekit/internal/errs"

var (
	// ErrDuplicateKey is returned by Put when the key exists and duplicates are disallowed.
	ErrDuplicateKey = errs.ErrDuplicateKey
	// ErrNotFound is returned by Delete when the key is absent.
	ErrNotFound = errs.ErrNotFound
	// ErrClosed is returned by Put on a freed table.
	ErrClosed = errs.ErrClosed
)
