package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
	"github.com/aadarshprajapati/docuchat-cli/internal/common"
	"github.com/aadarshprajapati/docuchat-cli/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRESTClient(srv.URL, 2*time.Second, logging.Discard(), opts...)
}

func TestBearerAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthorizationHeader)
		gotReqID = r.Header.Get(common.RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"u1"}}`))
	})
	c.SetToken("t1")

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer t1", gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthorizationHeader)
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	_, err := c.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 is AuthError",
			status: http.StatusUnauthorized,
			body:   `{"error":"invalid email or password"}`,
			check: func(t *testing.T, err error) {
				var ae *AuthError
				require.ErrorAs(t, err, &ae)
				require.Equal(t, "invalid email or password", ae.Message)
				require.ErrorIs(t, err, ErrUnauthorized)
			},
		},
		{
			name:   "403 is AuthError",
			status: http.StatusForbidden,
			body:   `{"message":"insufficient plan"}`,
			check: func(t *testing.T, err error) {
				var ae *AuthError
				require.ErrorAs(t, err, &ae)
				require.Equal(t, "insufficient plan", ae.Message)
			},
		},
		{
			name:   "500 is ServerError",
			status: http.StatusInternalServerError,
			body:   `{"message":"boom"}`,
			check: func(t *testing.T, err error) {
				var se *ServerError
				require.ErrorAs(t, err, &se)
				require.Equal(t, "boom", se.Message)
			},
		},
		{
			name:   "404 is RequestError",
			status: http.StatusNotFound,
			body:   `{"error":"document not found"}`,
			check: func(t *testing.T, err error) {
				var re *RequestError
				require.ErrorAs(t, err, &re)
				require.Equal(t, "document not found", re.Message)
			},
		},
		{
			name:   "field errors are joined",
			status: http.StatusBadRequest,
			body:   `{"errors":{"email":"email is required","name":"name is required"}}`,
			check: func(t *testing.T, err error) {
				var re *RequestError
				require.ErrorAs(t, err, &re)
				require.Equal(t, "email: email is required; name: name is required", re.Message)
			},
		},
		{
			name:   "unrecognized body falls back to status text",
			status: http.StatusBadRequest,
			body:   `<html>not json</html>`,
			check: func(t *testing.T, err error) {
				var re *RequestError
				require.ErrorAs(t, err, &re)
				require.Equal(t, "Bad Request", re.Message)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := c.ListDocuments(context.Background())
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestNetworkErrorOnDeadServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewRESTClient(url, time.Second, logging.Discard())
	_, err := c.ListDocuments(context.Background())

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestOnUnauthorizedFires(t *testing.T) {
	fired := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"expired"}`))
	}, WithOnUnauthorized(func() { fired++ }))

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, 1, fired)
}

func TestOnUnauthorizedNotFiredOn403(t *testing.T) {
	fired := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	}, WithOnUnauthorized(func() { fired++ }))

	_, err := c.Me(context.Background())
	require.Error(t, err)
	require.Zero(t, fired)
}

func TestLoginSetsTokenAndDecodesUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t1","data":{"id":"u1","name":"A","email":"a@b.com"}}`))
	})

	user, token, err := c.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "t1", token)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "t1", c.Token())
}

func TestLoginRejectsMissingToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":"u1"}}`))
	})

	_, _, err := c.Login(context.Background(), "a@b.com", "secret1")
	var se *ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "invalid response from server", se.Message)
	require.Empty(t, c.Token())
}

func TestUploadDocumentSendsMultipart(t *testing.T) {
	var gotName, gotContentType, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()

		data, err := io.ReadAll(file)
		require.NoError(t, err)

		gotName = header.Filename
		gotContentType = r.FormValue("contentType")
		gotBody = string(data)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"d1","name":"report.pdf","status":"ready"}}`))
	})

	doc, err := c.UploadDocument(context.Background(), "report.pdf", "application/pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	require.Equal(t, "d1", doc.ID)
	require.Equal(t, models.DocumentReady, doc.Status)
	require.Equal(t, "report.pdf", gotName)
	require.Equal(t, "application/pdf", gotContentType)
	require.Equal(t, "pdf bytes", gotBody)
}

func TestDisplayMessageFallback(t *testing.T) {
	require.Equal(t, "generic", DisplayMessage(io.EOF, "generic"))
	require.Equal(t, "nope", DisplayMessage(&AuthError{Status: 401, Message: "nope"}, "generic"))
	require.Equal(t, "email: required", DisplayMessage(&ValidationError{Field: "email", Message: "required"}, "generic"))
	require.Equal(t, "generic", DisplayMessage(&AuthError{Status: 401}, "generic"))
}
