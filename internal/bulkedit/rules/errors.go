package rules

import "errors"

var (
	ErrNoData             = errors.New("no source data provided to loader")
	ErrFailedToLoadRules  = errors.New("failed to load rule file")
	ErrUnsupportedVersion = errors.New("unsupported rule file version")
	ErrInvalidTarget      = errors.New("invalid rule target")
	ErrInvalidAction      = errors.New("invalid rule action")
	ErrNoRules            = errors.New("rule file contains no rules")
)
