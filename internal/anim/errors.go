package anim

import "errors"

// ErrConfig marks a rejected run configuration. Wrapped errors carry the
// offending field and value.
var ErrConfig = errors.New("anim: invalid configuration")
