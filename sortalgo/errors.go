package sortalgo

import "errors"

// Key projection errors
var (
	ErrNegativeKey = errors.New("sort key is negative")
)
