package feature

import "errors"

// ErrUnknownFeature indicates a requested feature name has no registered
// constructor. Returned by Lookup; callers configuring a cost.Computer from
// a user-supplied feature-name list must surface this as a fatal
// configuration error.
var ErrUnknownFeature = errors.New("feature: unknown feature name")
