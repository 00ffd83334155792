package column

import "errors"

// ErrUnknownKey indicates an operation referenced a StateKey not present in
// the Column.
var ErrUnknownKey = errors.New("column: unknown state key")

// ErrEmpty indicates an operation that requires at least one enrolled state
// was attempted on an empty Column.
var ErrEmpty = errors.New("column: column is empty")
