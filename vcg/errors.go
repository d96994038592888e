package vcg

import "errors"

// ErrEmptyIRGName indicates a FileSink was asked to dump with an empty irg
// name; the resulting filename would collide across compilation units.
var ErrEmptyIRGName = errors.New("vcg: irg name is empty")
