package roster

import "errors"

var (
	ErrNotFound    = errors.New("friend not found")
	ErrDuplicateID = errors.New("friend id already exists")
	ErrNoSelection = errors.New("no friend selected")
	ErrInvalid     = errors.New("invalid friend")
	ErrOverflow    = errors.New("balance out of range")
)
