// Package rules loads TOML rule files describing a batch of bulk edits,
// applied to a plan in file order.
package rules

import (
	"fmt"

	"github.com/atlanticdynamic/jmxbulk/internal/bulkedit"
	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
)

// Rule targets.
const (
	TargetSamplers = "samplers"
	TargetHeaders  = "headers"
)

// RuleSet is a parsed rule file.
type RuleSet struct {
	Version string `toml:"version"`
	Rules   []Rule `toml:"rule"`
}

// Rule is a single bulk edit. Header rules always delete rows, so Action
// is meaningful only for the samplers target.
type Rule struct {
	Target        string   `toml:"target"`
	Pattern       string   `toml:"pattern"`
	Action        string   `toml:"action"`
	Regex         bool     `toml:"regex"`
	CaseSensitive bool     `toml:"case_sensitive"`
	Invert        bool     `toml:"invert"`
	Scope         []string `toml:"scope"`
}

// Options returns the matcher options for the rule.
func (r *Rule) Options() bulkedit.MatchOptions {
	return bulkedit.MatchOptions{
		Regex:         r.Regex,
		CaseSensitive: r.CaseSensitive,
		Invert:        r.Invert,
	}
}

// Matcher builds the compiled matcher for the rule.
func (r *Rule) Matcher() (*bulkedit.Matcher, error) {
	return bulkedit.NewMatcher(r.Pattern, r.Options())
}

// action resolves the sampler action, defaulting to disable.
func (r *Rule) action() (bulkedit.Action, error) {
	if r.Action == "" {
		return bulkedit.ActionDisable, nil
	}
	return bulkedit.ParseAction(r.Action)
}

// Apply runs every rule against the plan in order and returns one result
// per rule. The plan is modified in place; saving is the caller's job.
func (rs *RuleSet) Apply(p *testplan.Plan) ([]bulkedit.Result, error) {
	results := make([]bulkedit.Result, 0, len(rs.Rules))

	for i := range rs.Rules {
		rule := &rs.Rules[i]

		matcher, err := rule.Matcher()
		if err != nil {
			return results, fmt.Errorf("rule %d: %w", i, err)
		}
		scope, err := bulkedit.ResolveScope(p, rule.Scope)
		if err != nil {
			return results, fmt.Errorf("rule %d: %w", i, err)
		}

		switch rule.Target {
		case TargetSamplers:
			action, err := rule.action()
			if err != nil {
				return results, fmt.Errorf("rule %d: %w", i, err)
			}
			matches := bulkedit.FindSamplers(p, matcher, scope)
			results = append(results, bulkedit.ApplySamplers(p, matches, action, matcher))
		case TargetHeaders:
			matches := bulkedit.FindHeaders(p, matcher, scope)
			results = append(results, bulkedit.DeleteHeaderRows(matches, matcher))
		default:
			return results, fmt.Errorf("rule %d: %w: %q", i, ErrInvalidTarget, rule.Target)
		}
	}
	return results, nil
}
