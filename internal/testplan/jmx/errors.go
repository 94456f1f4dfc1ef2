package jmx

import "errors"

var (
	ErrNoData               = errors.New("no source data provided to loader")
	ErrMalformedDocument    = errors.New("malformed jmx document")
	ErrMissingRoot          = errors.New("missing jmeterTestPlan root element")
	ErrUnsupportedVersion   = errors.New("unsupported jmx version")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
)
