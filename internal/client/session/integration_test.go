package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/api"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/session"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/storage"
	"github.com/aadarshprajapati/docuchat-cli/internal/gatewaytest"
	"github.com/aadarshprajapati/docuchat-cli/internal/logging"
)

func startGateway(t *testing.T) (*gatewaytest.Gateway, *httptest.Server) {
	t.Helper()
	gw := gatewaytest.New()
	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(srv.Close)
	return gw, srv
}

func newRestController(t *testing.T, url string, tokens storage.TokenStore) (*api.RESTClient, *session.Controller) {
	t.Helper()
	client := api.NewRESTClient(url, 5*time.Second, logging.Discard())
	ctrl := session.New(client, tokens, logging.Discard())
	client.SetOnUnauthorized(ctrl.HandleUnauthorized)
	return client, ctrl
}

// A token persisted by login and read back by bootstrap on a simulated
// restart must yield the same user that /api/auth/me reports for it.
func TestLoginBootstrapRoundTrip(t *testing.T) {
	gw, srv := startGateway(t)
	gw.AddUser("A", "a@b.com", "secret1")

	tokens := storage.NewMemStore()

	_, ctrl := newRestController(t, srv.URL, tokens)
	user, err := ctrl.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)

	// Simulated restart: fresh client and controller over the same store.
	client2, ctrl2 := newRestController(t, srv.URL, tokens)
	require.NoError(t, ctrl2.Bootstrap(context.Background()))

	snap := ctrl2.Snapshot()
	require.Equal(t, session.StateAuthenticated, snap.State)
	require.Equal(t, user.ID, snap.User.ID)
	require.Equal(t, user.Email, snap.User.Email)

	direct, err := client2.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, snap.User.ID, direct.ID)
	require.Equal(t, 2, gw.MeCalls())
}

func TestRegisterEcho(t *testing.T) {
	_, srv := startGateway(t)

	tokens := storage.NewMemStore()
	_, ctrl := newRestController(t, srv.URL, tokens)

	user, err := ctrl.Register(context.Background(), api.RegisterRequest{
		Name:        "A",
		Email:       "a@b.com",
		Password:    "secret1",
		AccountKind: models.AccountIndividual,
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "A", user.Name)
	require.Equal(t, "a@b.com", user.Email)

	stored, err := tokens.Load()
	require.NoError(t, err)
	require.NotEmpty(t, stored)
	require.Equal(t, user.ID, ctrl.Snapshot().User.ID)
}

func TestRevokedTokenIsNotRestored(t *testing.T) {
	gw, srv := startGateway(t)
	user := gw.AddUser("A", "a@b.com", "secret1")

	tokens := storage.NewMemStore()
	require.NoError(t, tokens.Save(gw.IssueToken(user.ID)))

	_, ctrl := newRestController(t, srv.URL, tokens)
	require.NoError(t, ctrl.Bootstrap(context.Background()))
	require.Equal(t, session.StateAuthenticated, ctrl.Snapshot().State)

	ctrl.Logout(context.Background())

	// The revoked token must not come back on a later restart even if it
	// leaks into the store again.
	_, err := tokens.Load()
	require.ErrorIs(t, err, storage.ErrNoToken)
}

// Any endpoint answering 401 is a global signal to clear the session.
func TestResourceCall401ClearsSession(t *testing.T) {
	gw, srv := startGateway(t)
	gw.AddUser("A", "a@b.com", "secret1")

	tokens := storage.NewMemStore()
	client, ctrl := newRestController(t, srv.URL, tokens)

	_, err := ctrl.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)

	gw.ForceStatus(http.StatusUnauthorized, 1)

	_, err = client.ListDocuments(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)

	snap := ctrl.Snapshot()
	require.Equal(t, session.StateUnauthenticated, snap.State)
	require.Nil(t, snap.User)

	_, loadErr := tokens.Load()
	require.ErrorIs(t, loadErr, storage.ErrNoToken)
}

func TestLogoutAgainstDeadGateway(t *testing.T) {
	gw, srv := startGateway(t)
	gw.AddUser("A", "a@b.com", "secret1")

	tokens := storage.NewMemStore()
	_, ctrl := newRestController(t, srv.URL, tokens)

	_, err := ctrl.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)

	srv.Close()

	ctrl.Logout(context.Background())

	snap := ctrl.Snapshot()
	require.Nil(t, snap.User)
	require.Equal(t, session.StateUnauthenticated, snap.State)

	_, loadErr := tokens.Load()
	require.ErrorIs(t, loadErr, storage.ErrNoToken)
}
