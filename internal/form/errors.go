package form

import "errors"

var (
	ErrNameRequired     = errors.New("friend name is required")
	ErrAvatarRequired   = errors.New("avatar url is required")
	ErrTotalRequired    = errors.New("bill total is required")
	ErrPaidRequired     = errors.New("your share of the bill is required")
	ErrPaidExceedsTotal = errors.New("your share cannot exceed the bill total")
	ErrUnknownPayer     = errors.New("unknown payer")
)
