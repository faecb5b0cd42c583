package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Z3MAX/Expensify/internal/client/api"
	"github.com/Z3MAX/Expensify/internal/client/models"
	"github.com/Z3MAX/Expensify/internal/client/repositories/history"
	"github.com/Z3MAX/Expensify/internal/logging"
)

// UploadState is the workflow phase of the upload controller.
type UploadState string

const (
	UploadIdle       UploadState = "idle"
	UploadSubmitting UploadState = "submitting"
)

// UploadSnapshot is an immutable view of the upload workflow.
type UploadSnapshot struct {
	State         UploadState
	File          *models.FileSelection
	EmployeeEmail string
	Notification  *models.Notification
}

// BearerSource supplies the bearer token of the current session.
// *SessionController satisfies it.
type BearerSource interface {
	AccessToken() string
}

// openSelected is a test seam for opening the picked spreadsheet.
var openSelected = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// allowedExtensions mirrors the picker filter of the upload screen.
var allowedExtensions = map[string]struct{}{
	".xls":  {},
	".xlsx": {},
}

// UploadController drives one spreadsheet submission at a time. The
// UploadSubmitting guard rejects a second Submit (and any selection change)
// with ErrBusy while a request is in flight. A failed submission keeps the
// selected file so the user can retry without re-picking it.
type UploadController struct {
	client  api.Client
	bearer  BearerSource
	history history.Repository
	log     logging.Logger

	mu    sync.Mutex
	state UploadState
	file  *models.FileSelection
	email string
	note  *models.Notification

	onChange func(UploadSnapshot)
}

// NewUploadController builds a controller. historyRepo may be nil, which
// disables the local submission log.
func NewUploadController(client api.Client, bearer BearerSource, historyRepo history.Repository, logger logging.Logger) *UploadController {
	return &UploadController{
		client:  client,
		bearer:  bearer,
		history: historyRepo,
		log:     logger,
		state:   UploadIdle,
	}
}

// OnChange registers the presentation callback invoked with a fresh snapshot
// after every state change. Register before the first operation.
func (c *UploadController) OnChange(fn func(UploadSnapshot)) {
	c.onChange = fn
}

// Snapshot returns the current state without side effects.
func (c *UploadController) Snapshot() UploadSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SelectFile replaces the current selection with the spreadsheet at path.
// Only the extension is checked (.xls/.xlsx); anything else fails with
// ErrValidation and the previous selection stays in place.
func (c *UploadController) SelectFile(path string) (UploadSnapshot, error) {
	c.mu.Lock()
	if c.state == UploadSubmitting {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrBusy
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := allowedExtensions[ext]; !ok {
		c.note = models.ErrorNotification(msgFileTypeNotAllowed)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return snap, fmt.Errorf("%w: extension %q", ErrValidation, ext)
	}

	c.file = &models.FileSelection{Name: filepath.Base(path), Path: path}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
	return snap, nil
}

// SetEmployeeEmail replaces the target employee e-mail. The value is not
// validated client-side; the backend decides.
func (c *UploadController) SetEmployeeEmail(email string) (UploadSnapshot, error) {
	c.mu.Lock()
	if c.state == UploadSubmitting {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrBusy
	}

	c.email = email
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
	return snap, nil
}

// Submit sends the selected spreadsheet and the employee e-mail to the
// backend using the session's bearer token. On success the selection is
// cleared and the notification reports the processed expense count; on any
// failure the selection is retained and the server's message (or a generic
// one) becomes the error notification. Retries are always user-triggered.
func (c *UploadController) Submit(ctx context.Context) (UploadSnapshot, error) {
	c.mu.Lock()
	if c.state == UploadSubmitting {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrBusy
	}

	c.note = nil

	if c.file == nil {
		c.note = models.ErrorNotification(msgFileRequired)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return snap, fmt.Errorf("%w: no file selected", ErrValidation)
	}

	file := *c.file
	email := c.email
	c.state = UploadSubmitting
	c.mu.Unlock()

	token := c.bearer.AccessToken()

	content, err := openSelected(file.Path)
	if err != nil {
		c.log.Error(ctx, "failed to open selected file", "path", file.Path, "error", err)
		return c.settle(ctx, nil, fmt.Errorf("open %s: %w", file.Name, err), file, email), nil
	}

	res, uerr := c.client.Upload(ctx, token, file.Name, content, email)
	content.Close()

	return c.settle(ctx, res, uerr, file, email), nil
}

// settle finishes a submission under the lock and records history on success.
func (c *UploadController) settle(ctx context.Context, res *api.UploadResult, err error, file models.FileSelection, email string) UploadSnapshot {
	c.mu.Lock()
	c.state = UploadIdle
	if err != nil {
		c.log.Warn(ctx, "upload failed", "file", file.Name, "error", err)
		c.note = models.ErrorNotification(failureText(err, msgUploadFailed))
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return snap
	}

	c.file = nil
	c.note = models.SuccessNotification(fmt.Sprintf(msgUploadSuccess, res.ExpenseCount))
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Info(ctx, "upload finished", "file", file.Name, "expense_count", res.ExpenseCount)
	c.recordHistory(ctx, res, file, email)
	c.emit(snap)
	return snap
}

// recordHistory logs the accepted submission locally. Failures are logged
// only; they never fail the upload itself.
func (c *UploadController) recordHistory(ctx context.Context, res *api.UploadResult, file models.FileSelection, email string) {
	if c.history == nil {
		return
	}

	rec := &models.UploadRecord{
		ID:            uuid.NewString(),
		FileName:      file.Name,
		EmployeeEmail: email,
		ExpenseCount:  res.ExpenseCount,
		TotalAmount:   res.TotalAmount,
		CreatedAt:     time.Now().UTC(),
	}
	if err := c.history.Insert(ctx, rec); err != nil {
		c.log.Error(ctx, "failed to record upload history", "error", err)
	}
}

func (c *UploadController) snapshotLocked() UploadSnapshot {
	snap := UploadSnapshot{State: c.state, EmployeeEmail: c.email}
	if c.file != nil {
		f := *c.file
		snap.File = &f
	}
	if c.note != nil {
		n := *c.note
		snap.Notification = &n
	}
	return snap
}

func (c *UploadController) emit(snap UploadSnapshot) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}
