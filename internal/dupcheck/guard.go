package dupcheck

import (
	"errors"
	"sync"
)

// ErrDuplicate is returned when a draft exactly matches an existing record.
var ErrDuplicate = errors.New("dupcheck: identical record already exists")

// guard holds the user-visible duplicate warning. The warning is dismissed
// the moment any draft field changes, so stale state never silently blocks
// a resubmission after edits.
type guard struct {
	mu      sync.Mutex
	warning string
}

// Warning returns the active duplicate warning, "" when clear.
func (g *guard) Warning() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.warning
}

// Blocked reports whether submission is currently refused.
func (g *guard) Blocked() bool {
	return g.Warning() != ""
}

// NoteEdit must be called on every draft change, including candidate or
// job selection. It clears the warning before any re-validation runs.
func (g *guard) NoteEdit() {
	g.mu.Lock()
	g.warning = ""
	g.mu.Unlock()
}

// Dismiss clears the warning explicitly (the warning banner's close button).
func (g *guard) Dismiss() {
	g.NoteEdit()
}

func (g *guard) setWarning(msg string) {
	g.mu.Lock()
	g.warning = msg
	g.mu.Unlock()
}
