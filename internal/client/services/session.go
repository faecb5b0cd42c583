// Package services contains the application controllers of the Expensify
// client: session lifecycle (login, registration, credential validation,
// logout) and the spreadsheet upload workflow.
package services

import (
	"context"
	"sync"

	"github.com/Z3MAX/Expensify/internal/client/api"
	"github.com/Z3MAX/Expensify/internal/client/models"
	"github.com/Z3MAX/Expensify/internal/client/repositories/credentials"
	"github.com/Z3MAX/Expensify/internal/logging"
)

// SessionState is the authentication phase of the client.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateValidating      SessionState = "validating"
	StateAuthenticated   SessionState = "authenticated"
)

// SessionSnapshot is an immutable view of the session handed to the
// presentation layer. User is set only when State is StateAuthenticated.
type SessionSnapshot struct {
	State        SessionState
	User         *models.User
	Form         models.AuthForm
	Notification *models.Notification
}

// SessionController owns the credential lifecycle. At most one
// authentication operation runs at a time; the StateValidating guard rejects
// concurrent attempts with ErrBusy.
//
// Backend rejections and connectivity failures are recovered here and
// surfaced only through the snapshot's Notification; the returned error is
// reserved for local refusals (ErrValidation, ErrBusy).
type SessionController struct {
	client api.Client
	creds  credentials.Store
	log    logging.Logger

	mu    sync.Mutex
	state SessionState
	token string
	user  *models.User
	form  models.AuthForm
	note  *models.Notification

	onChange        func(SessionSnapshot)
	onAuthenticated func(models.User)
}

func NewSessionController(client api.Client, creds credentials.Store, logger logging.Logger) *SessionController {
	return &SessionController{
		client: client,
		creds:  creds,
		log:    logger,
		state:  StateUnauthenticated,
	}
}

// OnChange registers the presentation callback invoked with a fresh snapshot
// after every state change. Register before the first operation.
func (c *SessionController) OnChange(fn func(SessionSnapshot)) {
	c.onChange = fn
}

// OnAuthenticated registers a callback fired on every entry into
// StateAuthenticated, e.g. to seed the upload form's employee e-mail.
func (c *SessionController) OnAuthenticated(fn func(models.User)) {
	c.onAuthenticated = fn
}

// Snapshot returns the current state without side effects.
func (c *SessionController) Snapshot() SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// AccessToken returns the bearer token of the current session, or "" when
// unauthenticated.
func (c *SessionController) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Restore loads the persisted credential and validates it against the
// backend. A missing credential leaves the session unauthenticated; a stored
// token that is visibly expired, rejected by the backend, or unverifiable due
// to connectivity is discarded so the client never loops on a dead credential.
func (c *SessionController) Restore(ctx context.Context) SessionSnapshot {
	c.mu.Lock()
	if c.state != StateUnauthenticated {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}

	token, err := c.creds.Load(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to load stored credential", "error", err)
	}
	if token == "" {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}

	if tokenExpired(token) {
		c.log.Info(ctx, "stored credential expired, discarding")
		snap := c.logoutLocked(ctx)
		c.mu.Unlock()
		c.emit(snap)
		return snap
	}

	c.state = StateValidating
	c.token = token
	c.mu.Unlock()

	user, err := c.client.Profile(ctx, token)

	c.mu.Lock()
	var snap SessionSnapshot
	if err != nil {
		c.log.Warn(ctx, "stored credential rejected", "error", err)
		snap = c.logoutLocked(ctx)
	} else {
		c.user = user
		c.state = StateAuthenticated
		snap = c.snapshotLocked()
	}
	c.mu.Unlock()

	if err == nil && c.onAuthenticated != nil {
		c.onAuthenticated(*user)
	}
	c.emit(snap)
	return snap
}

// Login authenticates with e-mail and password. Empty fields fail locally
// with ErrValidation and no request is sent.
func (c *SessionController) Login(ctx context.Context, email, password string) (SessionSnapshot, error) {
	c.mu.Lock()
	if c.state != StateUnauthenticated {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrBusy
	}

	c.form.Email = email
	c.form.Password = password
	c.note = nil

	if err := validateForm(c.form, "Email", "Password"); err != nil {
		c.note = models.ErrorNotification(msgLoginFieldsRequired)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return snap, err
	}

	c.state = StateValidating
	c.mu.Unlock()

	res, err := c.client.Login(ctx, email, password)
	return c.finishAuth(ctx, res, err)
}

// Register creates a new account. All five form fields are required; any
// empty one fails locally with ErrValidation and no request is sent.
func (c *SessionController) Register(ctx context.Context, form models.AuthForm) (SessionSnapshot, error) {
	c.mu.Lock()
	if c.state != StateUnauthenticated {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrBusy
	}

	c.form = form
	c.note = nil

	if err := validateForm(form); err != nil {
		c.note = models.ErrorNotification(msgRegisterFieldsRequired)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return snap, err
	}

	c.state = StateValidating
	c.mu.Unlock()

	res, err := c.client.Register(ctx, form)
	return c.finishAuth(ctx, res, err)
}

// Logout discards the credential and the user synchronously. It never fails
// and is idempotent.
func (c *SessionController) Logout(ctx context.Context) SessionSnapshot {
	c.mu.Lock()
	snap := c.logoutLocked(ctx)
	c.mu.Unlock()
	c.emit(snap)
	return snap
}

// finishAuth settles a login/register round trip: on failure the form is
// retained and the server's message (or a generic one) becomes the error
// notification; on success the credential is persisted, the form cleared,
// and the session becomes authenticated.
func (c *SessionController) finishAuth(ctx context.Context, res *api.AuthResult, err error) (SessionSnapshot, error) {
	c.mu.Lock()
	if err != nil {
		c.log.Warn(ctx, "authentication failed", "error", err)
		c.state = StateUnauthenticated
		c.note = models.ErrorNotification(failureText(err, msgAuthFailed))
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return snap, nil
	}

	if serr := c.creds.Save(ctx, res.AccessToken); serr != nil {
		c.log.Error(ctx, "failed to persist credential", "error", serr)
	}

	user := res.User
	c.token = res.AccessToken
	c.user = &user
	c.form = models.AuthForm{}
	c.state = StateAuthenticated
	c.note = models.SuccessNotification(msgAuthSuccess)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Info(ctx, "authenticated", "user", user.Email)
	if c.onAuthenticated != nil {
		c.onAuthenticated(user)
	}
	c.emit(snap)
	return snap, nil
}

// logoutLocked clears credential, user, and token. Callers hold c.mu.
func (c *SessionController) logoutLocked(ctx context.Context) SessionSnapshot {
	if err := c.creds.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear stored credential", "error", err)
	}
	c.token = ""
	c.user = nil
	c.state = StateUnauthenticated
	c.note = models.SuccessNotification(msgLogoutSuccess)
	return c.snapshotLocked()
}

func (c *SessionController) snapshotLocked() SessionSnapshot {
	snap := SessionSnapshot{State: c.state, Form: c.form}
	if c.user != nil {
		u := *c.user
		snap.User = &u
	}
	if c.note != nil {
		n := *c.note
		snap.Notification = &n
	}
	return snap
}

func (c *SessionController) emit(snap SessionSnapshot) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}
