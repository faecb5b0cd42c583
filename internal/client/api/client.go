// Package api talks to the expense-management backend over its HTTP/JSON API.
package api

import (
	"context"
	"io"

	"github.com/Z3MAX/Expensify/internal/client/models"
)

// AuthResult is the backend's answer to a successful login or registration.
type AuthResult struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// UploadResult reports how many expenses the backend extracted from the
// submitted spreadsheet.
type UploadResult struct {
	ExpenseCount int     `json:"expense_count"`
	TotalAmount  float64 `json:"total_amount"`
}

// Client is the backend API surface the controllers depend on.
//
// Contract:
//   - Login / Register: exchange credentials for a bearer token and profile.
//   - Profile: validate a stored token and fetch the profile behind it.
//   - Upload: submit one spreadsheet as multipart form data.
//   - Ping: check backend liveness.
//
// All methods honor context cancellation. Transport failures are reported as
// ErrUnavailable; non-2xx responses as *StatusError.
type Client interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, form models.AuthForm) (*AuthResult, error)
	Profile(ctx context.Context, token string) (*models.User, error)
	Upload(ctx context.Context, token, fileName string, content io.Reader, employeeEmail string) (*UploadResult, error)
	Ping(ctx context.Context) error
}
