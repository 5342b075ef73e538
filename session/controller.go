package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

// State is the process-wide authentication state.
type State int

const (
	// StateBootstrapping means a persisted token is being verified
	// against the backend. Views that depend on auth state must wait.
	StateBootstrapping State = iota
	// StateUnauthenticated means there is no valid session.
	StateUnauthenticated
	// StateAuthenticated means the token was verified and a fresh
	// profile is available. This is the only state granting access.
	StateAuthenticated
)

// String returns a short identifier for the state.
func (s State) String() string {
	switch s {
	case StateBootstrapping:
		return "bootstrapping"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Classified login failures, for the caller to render.
var (
	ErrInvalidCredentials = errors.New("session: invalid credentials")
	ErrRateLimited        = errors.New("session: too many attempts")
	ErrConnectivity       = errors.New("session: no connection to server")
)

// AuthAPI is the backend surface the controller needs. It is satisfied by
// *adopcion.AuthService.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*adopcion.LoginResult, error)
	Me(ctx context.Context) (*adopcion.Admin, error)
}

// Controller is the authentication state machine. It is the sole writer
// of the Store: the API client only signals a 401 through
// HandleAuthRejected and never touches persistence itself.
type Controller struct {
	store *Store
	api   AuthAPI

	mu      sync.Mutex
	state   State
	profile *adopcion.Admin
	subs    []func(State)
}

// NewController creates a controller in the Bootstrapping state. Call
// Bootstrap before rendering anything that depends on auth state.
func NewController(store *Store, api AuthAPI) *Controller {
	return &Controller{
		store: store,
		api:   api,
		state: StateBootstrapping,
	}
}

// Bootstrap resolves the persisted session. With no stored token it moves
// straight to Unauthenticated without any network call. With a token it
// verifies against the backend: on success the freshly returned profile
// replaces the cached one; on any failure the store is cleared.
func (c *Controller) Bootstrap(ctx context.Context) State {
	token := c.store.Token()
	if token == "" {
		c.transition(StateUnauthenticated, nil)
		return StateUnauthenticated
	}

	admin, err := c.api.Me(ctx)
	if err != nil {
		_ = c.store.Clear()
		c.transition(StateUnauthenticated, nil)
		return StateUnauthenticated
	}

	// Persist the fresh profile; the cached one was provisional.
	_ = c.store.Save(token, admin)
	c.transition(StateAuthenticated, admin)
	return StateAuthenticated
}

// Login exchanges credentials for a session. On success the session is
// persisted and the state becomes Authenticated. On failure the state is
// left untouched and a classified error is returned.
func (c *Controller) Login(ctx context.Context, email, password string) (*adopcion.Admin, error) {
	result, err := c.api.Login(ctx, email, password)
	if err != nil {
		return nil, classifyLoginError(err)
	}

	if err := c.store.Save(result.Token, &result.Admin); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	admin := result.Admin
	c.transition(StateAuthenticated, &admin)
	return &admin, nil
}

// Logout destroys the session. Idempotent.
func (c *Controller) Logout() {
	_ = c.store.Clear()
	c.transition(StateUnauthenticated, nil)
}

// HandleAuthRejected is the API client's 401 hook: the backend has
// rejected the session, so destroy it. Safe to call in any state.
func (c *Controller) HandleAuthRejected() {
	_ = c.store.Clear()
	c.transition(StateUnauthenticated, nil)
}

// State returns the current authentication state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Profile returns the verified profile, or nil unless Authenticated.
// Consumers must not infer authorization from the profile alone.
func (c *Controller) Profile() *adopcion.Admin {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated {
		return nil
	}
	return c.profile
}

// Subscribe registers a listener invoked after every state transition.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// transition swaps the state and notifies subscribers. Listeners run
// outside the lock; a no-op transition still notifies so subscribers can
// treat it as an event stream.
func (c *Controller) transition(next State, profile *adopcion.Admin) {
	c.mu.Lock()
	c.state = next
	c.profile = profile
	subs := make([]func(State), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// classifyLoginError maps an API failure to the login error taxonomy:
// invalid credentials, rate-limited, connectivity, or the original error
// when none applies.
func classifyLoginError(err error) error {
	apiErr, ok := adopcion.AsError(err)
	if !ok {
		return err
	}
	switch {
	case apiErr.Kind == adopcion.KindAuthRejected || apiErr.Kind == adopcion.KindValidation:
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	case apiErr.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case apiErr.Kind == adopcion.KindNetwork:
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	default:
		return err
	}
}
