package upm

import "context"

// Action is what a request asks the package manager to do.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// Status is the lifecycle state of a request.
type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusFailure
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "pending"
	}
}

// Terminal reports whether the status can no longer change.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailure
}

// Request is one add or remove submitted to the package manager.
type Request struct {
	ID     string
	Action Action
	Status Status
	// Err is the package manager's message for a failed request.
	Err string
}

// Client is the package manager. Each call blocks until the request reaches a
// terminal state; a nil error means success.
type Client interface {
	Add(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	Resolve(ctx context.Context) error
}

// DefaultAdds are the packages every new project gets.
func DefaultAdds() []string {
	return []string{"com.unity.ide.visualstudio", "com.unity.textmeshpro", "com.unity.inputsystem"}
}

// DefaultRemoves are template packages a new project drops.
func DefaultRemoves() []string {
	return []string{"com.unity.visualscripting", "com.unity.ide.rider", "com.unity.timeline"}
}
