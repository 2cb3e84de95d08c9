package api_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/api"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
	"github.com/aadarshprajapati/docuchat-cli/internal/gatewaytest"
	"github.com/aadarshprajapati/docuchat-cli/internal/logging"
)

func loggedInClient(t *testing.T) (*api.RESTClient, *gatewaytest.Gateway) {
	t.Helper()

	gw := gatewaytest.New()
	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(srv.Close)

	gw.AddUser("A", "a@b.com", "secret1")

	c := api.NewRESTClient(srv.URL, 5*time.Second, logging.Discard())
	_, _, err := c.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	return c, gw
}

func TestDocumentLifecycle(t *testing.T) {
	c, _ := loggedInClient(t)
	ctx := context.Background()

	doc, err := c.UploadDocument(ctx, "handbook.pdf", "application/pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.Equal(t, "handbook.pdf", doc.Name)
	require.Equal(t, models.DocumentReady, doc.Status)
	require.EqualValues(t, len("%PDF-1.4 fake"), doc.SizeBytes)

	docs, err := c.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	renamed, err := c.UpdateDocument(ctx, doc.ID, models.DocumentUpdate{Name: "handbook-v2.pdf"})
	require.NoError(t, err)
	require.Equal(t, "handbook-v2.pdf", renamed.Name)

	require.NoError(t, c.DeleteDocument(ctx, doc.ID))

	_, err = c.GetDocument(ctx, doc.ID)
	var re *api.RequestError
	require.ErrorAs(t, err, &re)
	require.Equal(t, 404, re.Status)
}

func TestModelTrainAndChat(t *testing.T) {
	c, _ := loggedInClient(t)
	ctx := context.Background()

	doc, err := c.UploadDocument(ctx, "faq.md", "text/markdown", strings.NewReader("# FAQ"))
	require.NoError(t, err)

	m, err := c.CreateModel(ctx, models.ModelSpec{Name: "support-bot", DocumentIDs: []string{doc.ID}})
	require.NoError(t, err)
	require.Equal(t, models.ModelDraft, m.Status)

	trained, err := c.TrainModel(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, models.ModelReady, trained.Status)

	chat, err := c.CreateChat(ctx, models.ChatSpec{ModelID: m.ID, Title: "onboarding"})
	require.NoError(t, err)

	reply, err := c.SendMessage(ctx, chat.ID, "hello")
	require.NoError(t, err)
	require.Equal(t, models.RoleAssistant, reply.Role)
	require.Contains(t, reply.Content, "hello")

	full, err := c.GetChat(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, full.Messages, 2)
	require.Equal(t, models.RoleUser, full.Messages[0].Role)
}

func TestUsagePlansAndAPIKey(t *testing.T) {
	c, _ := loggedInClient(t)
	ctx := context.Background()

	usage, err := c.GetUsage(ctx)
	require.NoError(t, err)
	require.Positive(t, usage.MessagesLimit)

	plans, err := c.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	key, err := c.GenerateAPIKey(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key.Key, "dk_"))
}

func TestRegisterBusinessAccount(t *testing.T) {
	gw := gatewaytest.New()
	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(srv.Close)

	c := api.NewRESTClient(srv.URL, 5*time.Second, logging.Discard())
	user, token, err := c.Register(context.Background(), api.RegisterRequest{
		Name:         "B",
		Email:        "b@corp.com",
		Password:     "secret1",
		AccountKind:  models.AccountBusiness,
		BusinessName: "Corp Inc",
		Industry:     "legal",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, user.IsBusiness())
	require.NotNil(t, user.Business)
	require.Equal(t, "Corp Inc", user.Business.Name)
}

func TestServerRejectionShapes(t *testing.T) {
	gw := gatewaytest.New()
	srv := httptest.NewServer(gw.Handler())
	t.Cleanup(srv.Close)

	c := api.NewRESTClient(srv.URL, 5*time.Second, logging.Discard())

	// Field-keyed errors from register.
	_, _, err := c.Register(context.Background(), api.RegisterRequest{Email: "x@y.com"})
	var re *api.RequestError
	require.ErrorAs(t, err, &re)
	require.Contains(t, re.Message, "name: name is required")
	require.Contains(t, re.Message, "password: password is required")

	// Single-field error from login.
	_, _, err = c.Login(context.Background(), "x@y.com", "nope")
	var ae *api.AuthError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, "invalid email or password", ae.Message)

	// Injected 5xx uses the message field.
	gw.ForceStatus(500, 1)
	_, err = c.ListPlans(context.Background())
	var se *api.ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "injected failure", se.Message)
}
