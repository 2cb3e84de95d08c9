// Package gatewaytest provides an in-process DocuChat gateway for tests.
//
// It implements the auth endpoints with real bcrypt password checks and HS256
// tokens, plus enough of the resource surface (documents, models, chats,
// usage, plans) to exercise the SDK end to end. Mount it on an
// httptest.Server:
//
//	gw := gatewaytest.New()
//	srv := httptest.NewServer(gw.Handler())
//	defer srv.Close()
//
// Failure injection via ForceStatus lets tests drive the client's error
// taxonomy without real outages.
package gatewaytest

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

type account struct {
	user         models.User
	passwordHash []byte
	documents    map[string]*models.Document
	models       map[string]*models.Model
	chats        map[string]*models.Chat
}

// Gateway is the fake backend. Zero value is not usable; call New.
type Gateway struct {
	mu       sync.Mutex
	secret   []byte
	byEmail  map[string]*account
	byID     map[string]*account
	revoked  map[string]bool
	tokenTTL time.Duration

	forcedStatus int
	forcedLeft   int

	meCalls int

	router chi.Router
}

// New constructs a gateway with a random signing secret and empty state.
func New() *Gateway {
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)

	g := &Gateway{
		secret:   secret,
		byEmail:  make(map[string]*account),
		byID:     make(map[string]*account),
		revoked:  make(map[string]bool),
		tokenTTL: time.Hour,
	}
	g.routes()
	return g
}

// Handler returns the HTTP handler to mount on an httptest.Server.
func (g *Gateway) Handler() http.Handler {
	return g.router
}

// ForceStatus makes the next n requests fail with the given status and a
// {"message": "injected failure"} body, then resumes normal behavior.
func (g *Gateway) ForceStatus(status, n int) {
	g.mu.Lock()
	g.forcedStatus = status
	g.forcedLeft = n
	g.mu.Unlock()
}

// MeCalls reports how many times /api/auth/me has been hit. Used to assert
// that bootstrap issues exactly the expected number of validation requests.
func (g *Gateway) MeCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.meCalls
}

// AddUser seeds an account directly, bypassing the register endpoint, and
// returns the created user.
func (g *Gateway) AddUser(name, email, password string) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	acc := &account{
		user: models.User{
			ID:          uuid.NewString(),
			Name:        name,
			Email:       email,
			AccountKind: models.AccountIndividual,
			CreatedAt:   time.Now().UTC(),
		},
		passwordHash: hash,
		documents:    make(map[string]*models.Document),
		models:       make(map[string]*models.Model),
		chats:        make(map[string]*models.Chat),
	}
	g.byEmail[email] = acc
	g.byID[acc.user.ID] = acc
	return acc.user
}

// IssueToken mints a valid token for the given user id, as the register and
// login endpoints do.
func (g *Gateway) IssueToken(userID string) string {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(g.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		panic(err)
	}
	return token
}

func (g *Gateway) verifyToken(raw string) (*account, bool) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return nil, false
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return nil, false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.revoked[raw] {
		return nil, false
	}
	acc, ok := g.byID[sub]
	return acc, ok
}

func newAPIKey() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "dk_" + hex.EncodeToString(b)
}
