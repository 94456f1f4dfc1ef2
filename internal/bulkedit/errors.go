package bulkedit

import "errors"

var (
	ErrEmptyPattern   = errors.New("empty pattern")
	ErrInvalidPattern = errors.New("invalid regular expression")
	ErrInvalidAction  = errors.New("invalid action")
	ErrScopeNotFound  = errors.New("scope node not found")
)
