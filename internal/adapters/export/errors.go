package export

import "errors"

// ErrWrite wraps any failure to persist the export files.
var ErrWrite = errors.New("write export")
