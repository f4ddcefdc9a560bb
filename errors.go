package htmlsemdiff

import "errors"

// ErrTooLarge is returned when the alignment table would exceed the bound set
// with WithMaxCells.
var ErrTooLarge = errors.New("alignment table too large")
