package session

import "errors"

// ErrImport is returned when a document cannot be imported.
// The underlying cause, typically model.ErrInvalidDocument, is also wrapped.
var ErrImport = errors.New("import failed")
