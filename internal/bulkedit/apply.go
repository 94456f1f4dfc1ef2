package bulkedit

import (
	"log/slog"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
	"github.com/gofrs/uuid/v5"
)

// Result describes one applied bulk operation.
type Result struct {
	// ID identifies the operation in logs.
	ID uuid.UUID
	// Action that was applied.
	Action Action
	// Pattern the matcher ran with.
	Pattern string
	// Affected is the number of samplers or header rows changed.
	Affected int
	// Previews are the display lines of everything that matched.
	Previews []string
}

// ApplySamplers applies the action to every matched sampler. Deletion
// processes the matches in reverse order so removing a node never shifts
// the position of one not yet processed.
func ApplySamplers(p *testplan.Plan, matches []SamplerMatch, action Action, m *Matcher) Result {
	res := newResult(action, m)
	logger := slog.Default().With("operation_id", res.ID, "action", action.String())

	if action == ActionDelete {
		for i := len(matches) - 1; i >= 0; i-- {
			res.record(matches[i].Preview())
			if p.Remove(matches[i].Node) {
				res.Affected++
				logger.Debug("deleted sampler", "name", matches[i].Node.Name)
			} else {
				logger.Warn("sampler already detached", "name", matches[i].Node.Name)
			}
		}
		reverse(res.Previews)
		logger.Info("bulk sampler delete complete", "affected", res.Affected, "pattern", res.Pattern)
		return res
	}

	enabled := action == ActionEnable
	for _, match := range matches {
		res.record(match.Preview())
		match.Node.Enabled = enabled
		res.Affected++
		logger.Debug("updated sampler", "name", match.Node.Name, "enabled", enabled)
	}
	logger.Info("bulk sampler update complete", "affected", res.Affected, "pattern", res.Pattern)
	return res
}

// DeleteHeaderRows removes every matched header row. Matches are walked in
// reverse, which removes rows at descending indexes within each manager.
func DeleteHeaderRows(matches []HeaderMatch, m *Matcher) Result {
	res := newResult(ActionDelete, m)
	logger := slog.Default().With("operation_id", res.ID, "action", "delete-headers")

	for i := len(matches) - 1; i >= 0; i-- {
		match := matches[i]
		res.record(match.Preview())

		hm, ok := match.Manager.HeaderManager()
		if !ok {
			logger.Warn("manager no longer a header manager", "name", match.Manager.Name)
			continue
		}
		if err := hm.RemoveRow(match.Index); err != nil {
			logger.Warn("failed to remove header row",
				"manager", match.Manager.Name, "index", match.Index, "error", err)
			continue
		}
		res.Affected++
		logger.Debug("deleted header row", "manager", match.Manager.Name, "header", match.Name)
	}
	reverse(res.Previews)
	logger.Info("bulk header delete complete", "affected", res.Affected, "pattern", res.Pattern)
	return res
}

func newResult(action Action, m *Matcher) Result {
	return Result{
		ID:      uuid.Must(uuid.NewV6()),
		Action:  action,
		Pattern: m.Pattern(),
	}
}

func (r *Result) record(preview string) {
	r.Previews = append(r.Previews, preview)
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
