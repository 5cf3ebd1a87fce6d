package sequence

import "errors"

// ErrNoRecords indicates the input contained no record with symbols.
var ErrNoRecords = errors.New("sequence: no records found")
