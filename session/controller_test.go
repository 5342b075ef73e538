package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

// fakeAuthAPI counts calls and returns canned results.
type fakeAuthAPI struct {
	loginResult *adopcion.LoginResult
	loginErr    error
	meResult    *adopcion.Admin
	meErr       error

	loginCalls int
	meCalls    int
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*adopcion.LoginResult, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*adopcion.Admin, error) {
	f.meCalls++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meResult, nil
}

func TestController_StartsBootstrapping(t *testing.T) {
	c := NewController(newTestStore(t), &fakeAuthAPI{})
	assert.Equal(t, StateBootstrapping, c.State())
	assert.Nil(t, c.Profile())
}

func TestController_BootstrapNoToken(t *testing.T) {
	api := &fakeAuthAPI{}
	c := NewController(newTestStore(t), api)

	state := c.Bootstrap(context.Background())

	assert.Equal(t, StateUnauthenticated, state)
	assert.Zero(t, api.meCalls, "no stored token must mean no network call")
}

func TestController_BootstrapValidToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("tok", &adopcion.Admin{Nombre: "Stale"}))
	api := &fakeAuthAPI{meResult: &adopcion.Admin{ID: 7, Nombre: "Ana"}}
	c := NewController(store, api)

	state := c.Bootstrap(context.Background())

	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, 1, api.meCalls)
	require.NotNil(t, c.Profile())
	assert.Equal(t, "Ana", c.Profile().Nombre, "verified profile must replace the cached one")
	assert.Equal(t, "Ana", store.Profile().Nombre, "fresh profile must be persisted")
}

func TestController_BootstrapRejectedToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("expired", &adopcion.Admin{Nombre: "Ana"}))
	api := &fakeAuthAPI{meErr: &adopcion.Error{Kind: adopcion.KindAuthRejected, StatusCode: 401}}
	c := NewController(store, api)

	state := c.Bootstrap(context.Background())

	assert.Equal(t, StateUnauthenticated, state)
	assert.Equal(t, "", store.Token(), "rejected token must be cleared")
	assert.Nil(t, c.Profile())
}

func TestController_LoginSuccess(t *testing.T) {
	store := newTestStore(t)
	api := &fakeAuthAPI{loginResult: &adopcion.LoginResult{
		Token: "tok-new",
		Admin: adopcion.Admin{ID: 7, Nombre: "Ana", Rol: adopcion.RolAdmin},
	}}
	c := NewController(store, api)

	admin, err := c.Login(context.Background(), "ana@refugio.org", "secret")

	require.NoError(t, err)
	assert.Equal(t, "Ana", admin.Nombre)
	assert.Equal(t, StateAuthenticated, c.State())
	assert.Equal(t, "tok-new", store.Token())
	require.NotNil(t, store.Profile())
}

func TestController_LoginClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"401 means invalid credentials", &adopcion.Error{Kind: adopcion.KindAuthRejected, StatusCode: 401}, ErrInvalidCredentials},
		{"422 means invalid credentials", &adopcion.Error{Kind: adopcion.KindValidation, StatusCode: 422}, ErrInvalidCredentials},
		{"429 means rate limited", &adopcion.Error{Kind: adopcion.KindOther, StatusCode: 429}, ErrRateLimited},
		{"network means connectivity", &adopcion.Error{Kind: adopcion.KindNetwork}, ErrConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			c := NewController(store, &fakeAuthAPI{loginErr: tc.err})
			c.Bootstrap(context.Background())

			_, err := c.Login(context.Background(), "a@b.com", "pw")

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, StateUnauthenticated, c.State(), "failed login must not change state")
			assert.Equal(t, "", store.Token(), "failed login must not persist anything")
		})
	}
}

func TestController_LoginUnclassifiedErrorPassesThrough(t *testing.T) {
	cause := errors.New("something odd")
	c := NewController(newTestStore(t), &fakeAuthAPI{loginErr: cause})

	_, err := c.Login(context.Background(), "a@b.com", "pw")

	assert.ErrorIs(t, err, cause)
}

func TestController_LogoutIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("tok", &adopcion.Admin{Nombre: "Ana"}))
	api := &fakeAuthAPI{meResult: &adopcion.Admin{Nombre: "Ana"}}
	c := NewController(store, api)
	c.Bootstrap(context.Background())

	c.Logout()
	c.Logout()

	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Equal(t, "", store.Token())
	assert.Zero(t, api.loginCalls, "logout is local only")
}

func TestController_HandleAuthRejected(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("tok", &adopcion.Admin{Nombre: "Ana"}))
	api := &fakeAuthAPI{meResult: &adopcion.Admin{Nombre: "Ana"}}
	c := NewController(store, api)
	c.Bootstrap(context.Background())
	require.Equal(t, StateAuthenticated, c.State())

	c.HandleAuthRejected()

	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Equal(t, "", store.Token())
	assert.Nil(t, c.Profile())
}

func TestController_SubscribersSeeTransitions(t *testing.T) {
	store := newTestStore(t)
	c := NewController(store, &fakeAuthAPI{loginResult: &adopcion.LoginResult{
		Token: "tok",
		Admin: adopcion.Admin{Nombre: "Ana"},
	}})

	var seen []State
	c.Subscribe(func(s State) { seen = append(seen, s) })

	c.Bootstrap(context.Background())
	_, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	c.Logout()

	assert.Equal(t, []State{StateUnauthenticated, StateAuthenticated, StateUnauthenticated}, seen)
}
