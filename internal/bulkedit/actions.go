package bulkedit

import (
	"fmt"
	"strings"
)

// Action is what gets applied to every matched sampler.
type Action string

const (
	ActionDelete  Action = "delete"
	ActionDisable Action = "disable"
	ActionEnable  Action = "enable"
)

// ParseAction converts a user-supplied action name.
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionDelete:
		return ActionDelete, nil
	case ActionDisable:
		return ActionDisable, nil
	case ActionEnable:
		return ActionEnable, nil
	}
	return "", fmt.Errorf("%w: %q (expected delete, disable or enable)", ErrInvalidAction, s)
}

func (a Action) String() string {
	return string(a)
}

// Past returns the past tense used in result messages.
func (a Action) Past() string {
	return string(a) + "d"
}

// Description returns the help text for the action.
func (a Action) Description() string {
	switch a {
	case ActionDelete:
		return "Permanently remove matching samplers from the test plan"
	case ActionDisable:
		return "Disable matching samplers (they will not execute during test runs)"
	case ActionEnable:
		return "Enable matching samplers (previously disabled samplers will execute)"
	}
	return ""
}
