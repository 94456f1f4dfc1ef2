package testplan

import "errors"

var (
	ErrEmptyTag          = errors.New("empty element tag")
	ErrInvalidHeaderName = errors.New("invalid header name")
	ErrInvalidPort       = errors.New("invalid port")
	ErrRowOutOfRange     = errors.New("header row index out of range")
)
