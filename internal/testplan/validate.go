package testplan

import (
	"errors"
	"fmt"

	"golang.org/x/net/http/httpguts"
)

// Validate checks every element in the plan.
func (p *Plan) Validate() error {
	var errs []error
	p.Walk(func(n *Node) bool {
		if err := n.Validate(); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	return errors.Join(errs...)
}

// Validate performs validation for a single element. Header manager rows
// must carry valid HTTP field names; everything else in the property bag is
// accepted as JMeter wrote it.
func (n *Node) Validate() error {
	var errs []error

	if n.Tag == "" {
		errs = append(errs, ErrEmptyTag)
	}

	if hm, ok := n.HeaderManager(); ok {
		for i, row := range hm.Rows() {
			if row.Name == "" {
				errs = append(errs, fmt.Errorf("%w: empty name in row %d of '%s'",
					ErrInvalidHeaderName, i, n.Name))
				continue
			}
			if !httpguts.ValidHeaderFieldName(row.Name) {
				errs = append(errs, fmt.Errorf("%w: %q in row %d of '%s'",
					ErrInvalidHeaderName, row.Name, i, n.Name))
			}
		}
	}

	if hs, ok := n.HTTPSampler(); ok {
		if port := hs.Port(); port < 0 || port > 65535 {
			errs = append(errs, fmt.Errorf("%w: %d in sampler '%s'",
				ErrInvalidPort, port, n.Name))
		}
	}

	return errors.Join(errs...)
}
