package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Z3MAX/Expensify/internal/client/models"
	"github.com/Z3MAX/Expensify/internal/logging"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/api", 0, logging.NewText(io.Discard, slog.LevelError))
}

func TestLogin_Success(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"email":"a@x.com","password":"pw"}`, string(body))

		w.Write([]byte(`{"access_token":"t1","user":{"id":7,"email":"a@x.com"}}`))
	}))

	res, err := c.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "t1", res.AccessToken)
	require.Equal(t, "a@x.com", res.User.Email)
	require.EqualValues(t, 7, res.User.ID)
}

func TestLogin_RejectedCarriesServerMessage(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Credenciais inválidas"}`))
	}))

	_, err := c.Login(context.Background(), "a@x.com", "bad")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnauthorized, se.StatusCode)
	require.Equal(t, "Credenciais inválidas", se.Message)
}

func TestRegister_SendsFullForm(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/register", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		require.Contains(t, string(body), `"partner_user_secret":"s3cr3t"`)
		require.Contains(t, string(body), `"policy_id":"pol1"`)

		w.Write([]byte(`{"access_token":"t2","user":{"email":"b@x.com"}}`))
	}))

	form := models.AuthForm{
		Email:             "b@x.com",
		Password:          "pw",
		PartnerUserID:     "pid",
		PartnerUserSecret: "s3cr3t",
		PolicyID:          "pol1",
	}
	res, err := c.Register(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, "t2", res.AccessToken)
}

func TestProfile_SendsBearerToken(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/profile", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"user":{"email":"a@x.com","policy_id":"p1"}}`))
	}))

	user, err := c.Profile(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", user.Email)
	require.Equal(t, "p1", user.PolicyID)
}

func TestProfile_Unauthorized(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expirado"}`))
	}))

	_, err := c.Profile(context.Background(), "stale")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnauthorized, se.StatusCode)
}

func TestUpload_MultipartFieldsAndAuth(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "worker@x.com", r.FormValue("employee_email"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "despesas.xlsx", hdr.Filename)

		content, _ := io.ReadAll(f)
		require.Equal(t, "spreadsheet-bytes", string(content))

		w.Write([]byte(`{"expense_count":42,"total_amount":1234.5}`))
	}))

	res, err := c.Upload(context.Background(), "tok-123", "despesas.xlsx",
		bytes.NewReader([]byte("spreadsheet-bytes")), "worker@x.com")
	require.NoError(t, err)
	require.Equal(t, 42, res.ExpenseCount)
	require.Equal(t, 1234.5, res.TotalAmount)
}

func TestUpload_ServerError(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"bad format"}`))
	}))

	_, err := c.Upload(context.Background(), "t", "f.xls", strings.NewReader("x"), "e@x.com")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "bad format", se.Message)
}

func TestPing(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/health", r.URL.Path)
			w.Write([]byte(`{"status":"ok"}`))
		}))
		require.NoError(t, c.Ping(context.Background()))
	})

	t.Run("degraded status", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"down"}`))
		}))
		require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
	})
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listens anymore

	c := NewHTTPClient(url, 0, logging.NewText(io.Discard, slog.LevelError))
	_, err := c.Login(context.Background(), "a@x.com", "pw")
	require.ErrorIs(t, err, ErrUnavailable)

	var se *StatusError
	require.False(t, errors.As(err, &se))
}
