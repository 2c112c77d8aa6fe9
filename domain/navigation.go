package domain

import (
	"regexp"
)

var canonicalID = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidateID returns candidate unchanged when it has the canonical 8-4-4-4-12
// hexadecimal shape, nil otherwise. It never checks that the resource exists.
func ValidateID(candidate string) *string {
	if !canonicalID.MatchString(candidate) {
		return nil
	}
	return &candidate
}

// IsCanonicalID reports whether s has the canonical identifier shape.
func IsCanonicalID(s string) bool {
	return canonicalID.MatchString(s)
}

func validatePtr(candidate *string) *string {
	if candidate == nil {
		return nil
	}
	return ValidateID(*candidate)
}

// Normalize validates each field of the triple independently.
// A malformed field becomes nil and leaves the other two untouched.
func (s LastState) Normalize() LastState {
	return LastState{
		LastWorkspace: validatePtr(s.LastWorkspace),
		LastChannel:   validatePtr(s.LastChannel),
		LastMessage:   validatePtr(s.LastMessage),
	}
}

type TargetKind string

const (
	TargetHome      TargetKind = "home"
	TargetWorkspace TargetKind = "workspace"
	TargetChannel   TargetKind = "channel"
	TargetEntry     TargetKind = "entry"
)

// Target is the single view a resuming session lands on.
// MessageID is informational only and never influences Kind.
type Target struct {
	Kind        TargetKind `json:"target"`
	WorkspaceID *string    `json:"workspace_id"`
	ChannelID   *string    `json:"channel_id"`
	MessageID   *string    `json:"message_id"`
}

// Resolve picks the landing view from a stored triple, first match wins:
// channel, then workspace, then home. Fields are re-validated so that state
// written before validation existed degrades instead of being replayed.
// The channel is not cross-checked against the workspace.
func Resolve(state LastState) Target {
	state = state.Normalize()
	target := Target{
		WorkspaceID: state.LastWorkspace,
		ChannelID:   state.LastChannel,
		MessageID:   state.LastMessage,
	}
	switch {
	case state.LastChannel != nil:
		target.Kind = TargetChannel
	case state.LastWorkspace != nil:
		target.Kind = TargetWorkspace
	default:
		target.Kind = TargetHome
	}
	return target
}

// Path renders the client route for the target.
func (t Target) Path() string {
	switch t.Kind {
	case TargetChannel:
		return "/channel/" + *t.ChannelID
	case TargetWorkspace:
		return "/workspace/" + *t.WorkspaceID
	case TargetHome:
		return "/home"
	default:
		return "/"
	}
}

// EntryTarget is the login view a session falls back to when it cannot resume.
func EntryTarget() Target {
	return Target{Kind: TargetEntry}
}
