package session

import "sync"

// Decision is the guard's verdict for a protected view.
type Decision int

const (
	// DecisionWait means auth state is still being resolved; render a
	// neutral placeholder, neither content nor redirect.
	DecisionWait Decision = iota
	// DecisionRedirectLogin means the user must log in first. The
	// requested destination is recorded for post-login forwarding.
	DecisionRedirectLogin
	// DecisionAllow means the view renders unconditionally. There is no
	// per-view permission granularity.
	DecisionAllow
)

// Guard gates access to administrative views based on the controller's
// state, preserving the intended destination across a login redirect.
type Guard struct {
	mu       sync.Mutex
	intended string
}

// Check returns the verdict for navigating to target in the given state.
func (g *Guard) Check(state State, target string) Decision {
	switch state {
	case StateBootstrapping:
		return DecisionWait
	case StateAuthenticated:
		return DecisionAllow
	default:
		g.mu.Lock()
		g.intended = target
		g.mu.Unlock()
		return DecisionRedirectLogin
	}
}

// ConsumeIntended returns the destination captured by the last redirect
// and clears it, so a successful login forwards there exactly once.
func (g *Guard) ConsumeIntended() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	dest := g.intended
	g.intended = ""
	return dest
}
