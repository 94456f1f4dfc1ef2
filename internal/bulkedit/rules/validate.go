package rules

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/jmxbulk/internal/bulkedit"
)

// Validate checks the rule set before anything touches the plan.
func (rs *RuleSet) Validate() error {
	var errs []error

	version := rs.Version
	if version == "" {
		version = "v1"
	}
	if version != "v1" {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnsupportedVersion, rs.Version))
	}

	if len(rs.Rules) == 0 {
		errs = append(errs, ErrNoRules)
	}

	for i := range rs.Rules {
		if err := rs.Rules[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// Validate performs validation for a single rule.
func (r *Rule) Validate() error {
	var errs []error

	switch r.Target {
	case TargetSamplers:
		if _, err := r.action(); err != nil {
			errs = append(errs, err)
		}
	case TargetHeaders:
		if r.Action != "" && r.Action != bulkedit.ActionDelete.String() {
			errs = append(errs, fmt.Errorf("%w: header rules only delete rows, got %q",
				ErrInvalidAction, r.Action))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q (expected samplers or headers)",
			ErrInvalidTarget, r.Target))
	}

	// Reuse the matcher constructor for pattern and regex validation.
	if _, err := r.Matcher(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
