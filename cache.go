package sheetpack

import "fmt"

// Cache provides access to previously built sheet bundles. Lookup is keyed
// by the sheet's reduced-tier image path relative to the working directory;
// the returned location is an opaque handle passed back to Extract. The
// cache is read-only from this side: populating it with fresh builds is the
// caller's responsibility.
type Cache interface {
	// Lookup reports whether a bundle triple exists for key and where.
	Lookup(key string) (loc string, ok bool)

	// Extract copies one cached entry to dest.
	Extract(loc, entry, dest string) error
}

// CacheError reports a failed extraction from an assumed cache hit. Once a
// lookup succeeds all six artifacts must extract; any failure aborts the
// whole request rather than falling back to a rebuild.
type CacheError struct {
	Sheet string
	Entry string
	Err   error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("sheetpack: sheet %q: extracting %q from cache: %v", e.Sheet, e.Entry, e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }
