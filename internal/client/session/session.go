// Package session implements the client-side authentication session: a small
// state machine that bootstraps from a persisted bearer token, exchanges
// credentials for a new one, and exposes the derived state (current user,
// loading flags, last error) to whatever presentation layer consumes it.
//
// One controller instance is owned by the application's root composition and
// passed down by reference; there is no package-level singleton.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/api"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
	"github.com/aadarshprajapati/docuchat-cli/internal/client/storage"
	"github.com/aadarshprajapati/docuchat-cli/internal/logging"
)

// State is the session lifecycle phase.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateBootstrapping   State = "bootstrapping"
	StateAuthenticated   State = "authenticated"

	// StateAuthFailed marks a rejected login or registration. It is advisory:
	// the session behaves as unauthenticated and the next operation proceeds
	// normally.
	StateAuthFailed State = "authentication_failed"
)

const (
	loginFailedMsg    = "Login failed. Please try again."
	registerFailedMsg = "Registration failed. Please try again."
)

// Gateway is the slice of the API client the controller needs.
type Gateway interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, req api.RegisterRequest) (*models.User, string, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	SetToken(token string)
}

// Snapshot is an immutable view of the session state. The User pointer is
// shared and must be treated as read-only.
type Snapshot struct {
	State               State
	User                *models.User
	IsLoading           bool
	InitialLoadComplete bool
	LastError           string
}

// IsAuthenticated reports whether a user is signed in.
func (s Snapshot) IsAuthenticated() bool { return s.State == StateAuthenticated }

// Controller owns the session state machine.
//
// Mutating operations (Bootstrap, Login, Register, Logout) are serialized on
// an operation mutex, so their transitions are totally ordered per instance;
// a logout issued while a login is in flight waits for the login to settle.
// Snapshot and ClearError only touch the state mutex and never block on the
// network.
type Controller struct {
	gw     Gateway
	tokens storage.TokenStore
	log    logging.Logger

	opMu sync.Mutex

	mu                  sync.Mutex
	state               State
	user                *models.User
	isLoading           bool
	initialLoadComplete bool
	lastError           string

	// inflight is non-nil while a bootstrap is running; overlapping callers
	// wait on it and observe bootErr instead of issuing a second validation.
	inflight chan struct{}
	bootErr  error

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// New constructs a controller in the unauthenticated state. Call Bootstrap
// once at startup to resume a persisted session.
func New(gw Gateway, tokens storage.TokenStore, log logging.Logger) *Controller {
	return &Controller{
		gw:     gw,
		tokens: tokens,
		log:    log,
		state:  StateUnauthenticated,
		subs:   make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:               c.state,
		User:                c.user,
		IsLoading:           c.isLoading,
		InitialLoadComplete: c.initialLoadComplete,
		LastError:           c.lastError,
	}
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription. Callbacks run on
// the mutating goroutine and must not call back into the controller's
// mutating operations.
func (c *Controller) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// Bootstrap resumes a persisted session. With no stored token it completes
// immediately without touching the network; otherwise it validates the token
// against the gateway and discards it on rejection. The call is idempotent:
// once the initial load has completed it is a no-op, and overlapping calls
// share a single in-flight validation.
//
// Rejected or unreachable validation is not an error from the caller's point
// of view; the session just ends up unauthenticated. The returned error is
// reserved for context cancellation.
func (c *Controller) Bootstrap(ctx context.Context) error {
	c.mu.Lock()
	if c.initialLoadComplete {
		c.mu.Unlock()
		return nil
	}
	if c.inflight != nil {
		ch := c.inflight
		c.mu.Unlock()
		select {
		case <-ch:
			c.mu.Lock()
			err := c.bootErr
			c.mu.Unlock()
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	ch := make(chan struct{})
	c.inflight = ch
	c.mu.Unlock()

	err := c.runBootstrap(ctx)

	c.mu.Lock()
	c.bootErr = err
	c.inflight = nil
	c.mu.Unlock()
	close(ch)

	return err
}

func (c *Controller) runBootstrap(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	token, err := c.tokens.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrNoToken) {
			c.log.Warn(ctx, "token load failed", "error", err)
		}
		c.update(func() {
			c.state = StateUnauthenticated
			c.initialLoadComplete = true
		})
		return nil
	}

	c.update(func() {
		c.state = StateBootstrapping
		c.isLoading = true
	})

	c.gw.SetToken(token)

	user, err := c.gw.Me(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// Leave the token alone on cancellation; a cancelled startup is
			// not evidence the token is bad.
			c.update(func() {
				c.state = StateUnauthenticated
				c.isLoading = false
				c.initialLoadComplete = true
			})
			c.gw.SetToken("")
			return ctx.Err()
		}
		c.log.Warn(ctx, "session restore failed, discarding token", "error", err)
		if clearErr := c.tokens.Clear(); clearErr != nil {
			c.log.Warn(ctx, "token clear failed", "error", clearErr)
		}
		c.gw.SetToken("")
		c.update(func() {
			c.state = StateUnauthenticated
			c.user = nil
			c.isLoading = false
			c.initialLoadComplete = true
		})
		return nil
	}

	c.update(func() {
		c.state = StateAuthenticated
		c.user = user
		c.isLoading = false
		c.initialLoadComplete = true
	})
	c.log.Info(ctx, "session restored", "user", user.Email)
	return nil
}

// Login exchanges credentials for a session. Empty or malformed input fails
// locally with *api.ValidationError before any network call. Remote rejection
// is returned to the caller and mirrored into LastError.
func (c *Controller) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := validateLogin(email, password); err != nil {
		return nil, err
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.update(func() {
		c.isLoading = true
		c.lastError = ""
	})

	user, token, err := c.gw.Login(ctx, email, password)
	if err != nil {
		c.fail(err, loginFailedMsg)
		return nil, err
	}

	c.commit(ctx, user, token)
	return user, nil
}

// Register creates an account and signs it in. Payload requirements: name,
// email, and password always; a business name when the account kind is
// business. An empty account kind defaults to individual.
func (c *Controller) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	if req.AccountKind == "" {
		req.AccountKind = models.AccountIndividual
	}
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.update(func() {
		c.isLoading = true
		c.lastError = ""
	})

	user, token, err := c.gw.Register(ctx, req)
	if err != nil {
		c.fail(err, registerFailedMsg)
		return nil, err
	}

	c.commit(ctx, user, token)
	return user, nil
}

// Logout tears the session down. The remote invalidation call is best
// effort: its failure is logged and never surfaced, and local cleanup (the
// persisted token, the attached header token, the in-memory user) happens
// unconditionally.
func (c *Controller) Logout(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.update(func() {
		c.isLoading = true
	})

	if err := c.gw.Logout(ctx); err != nil {
		c.log.Warn(ctx, "remote logout failed, clearing locally", "error", err)
	}

	if err := c.tokens.Clear(); err != nil {
		c.log.Warn(ctx, "token clear failed", "error", err)
	}
	c.gw.SetToken("")

	c.update(func() {
		c.state = StateUnauthenticated
		c.user = nil
		c.isLoading = false
		c.lastError = ""
	})
}

// ClearError resets LastError. Idempotent, no other side effects.
func (c *Controller) ClearError() {
	c.mu.Lock()
	if c.lastError == "" {
		c.mu.Unlock()
		return
	}
	c.lastError = ""
	c.mu.Unlock()
	c.notify()
}

// HandleUnauthorized is the global 401 signal: any endpoint rejecting the
// token invalidates the whole session. Wire it to the API client's
// OnUnauthorized hook. It runs on the transport goroutine, so it only clears
// local state and never issues requests or takes the operation mutex.
func (c *Controller) HandleUnauthorized() {
	if err := c.tokens.Clear(); err != nil {
		c.log.Warn(context.Background(), "token clear failed", "error", err)
	}
	c.gw.SetToken("")

	c.update(func() {
		c.user = nil
		if c.state == StateAuthenticated || c.state == StateBootstrapping {
			c.state = StateUnauthenticated
		}
	})
}

// commit records a successful authentication: persists the token and flips
// the machine to Authenticated. A token that authenticated remotely but
// failed to persist still yields a live in-memory session.
func (c *Controller) commit(ctx context.Context, user *models.User, token string) {
	if err := c.tokens.Save(token); err != nil {
		c.log.Warn(ctx, "token persist failed, session is memory-only", "error", err)
	}

	c.update(func() {
		c.state = StateAuthenticated
		c.user = user
		c.isLoading = false
		c.lastError = ""
	})
	c.log.Info(ctx, "authenticated", "user", user.Email)
}

// fail records a rejected login/register attempt.
func (c *Controller) fail(err error, fallback string) {
	msg := api.DisplayMessage(err, fallback)
	c.update(func() {
		c.state = StateAuthFailed
		c.user = nil
		c.isLoading = false
		c.lastError = msg
	})
}

// update applies mutate under the state lock and notifies subscribers.
func (c *Controller) update(mutate func()) {
	c.mu.Lock()
	mutate()
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) notify() {
	snap := c.Snapshot()

	c.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
