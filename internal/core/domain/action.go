// Package domain holds the pure types of the carthage orchestration core.
package domain

import "go.trai.ch/zerr"

// Action is one of the carthage verbs this tool drives.
type Action string

const (
	// ActionBootstrap fetches and builds the dependencies pinned in Cartfile.resolved.
	ActionBootstrap Action = "bootstrap"
	// ActionUpdate re-resolves Cartfile and rebuilds.
	ActionUpdate Action = "update"
	// ActionBuild rebuilds the already-fetched dependencies.
	ActionBuild Action = "build"
)

// ParseAction converts a string into a known Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBootstrap, ActionUpdate, ActionBuild:
		return Action(s), nil
	default:
		return "", zerr.With(ErrUnknownAction, "action", s)
	}
}

func (a Action) String() string {
	return string(a)
}
