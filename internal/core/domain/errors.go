package domain

import "errors"

// Error taxonomy for the catalogue core. Callers classify failures with
// errors.Is; every error returned by the manager wraps exactly one of these.
var (
	// ErrValidation marks bad caller input. No state was changed.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown asset id or category name.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate marks an attempt to create something that already exists.
	ErrDuplicate = errors.New("already exists")

	// ErrProtectedCategory marks an attempt to delete the default category.
	ErrProtectedCategory = errors.New("category is protected")

	// ErrImport marks an I/O failure while bringing content into the library.
	// Any partial copy has been cleaned up.
	ErrImport = errors.New("import failed")

	// ErrPersistence marks a failure writing the metadata store.
	ErrPersistence = errors.New("persistence failed")

	// ErrCorruptStore marks an unparseable metadata store document. The
	// manager recovers by starting from an empty catalogue.
	ErrCorruptStore = errors.New("store is corrupt")
)
