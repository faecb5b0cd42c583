package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Z3MAX/Expensify/internal/client/api"
	"github.com/Z3MAX/Expensify/internal/client/models"
	"github.com/Z3MAX/Expensify/internal/client/services"
	"github.com/Z3MAX/Expensify/internal/logging"
)

// stubClient implements api.Client with canned responses.
type stubClient struct {
	loginRes    *api.AuthResult
	loginErr    error
	registerRes *api.AuthResult
	registerErr error

	lastLoginEmail   string
	lastRegisterForm models.AuthForm
}

func (s *stubClient) Login(_ context.Context, email, _ string) (*api.AuthResult, error) {
	s.lastLoginEmail = email
	return s.loginRes, s.loginErr
}

func (s *stubClient) Register(_ context.Context, form models.AuthForm) (*api.AuthResult, error) {
	s.lastRegisterForm = form
	return s.registerRes, s.registerErr
}

func (s *stubClient) Profile(context.Context, string) (*models.User, error) { return nil, nil }

func (s *stubClient) Upload(context.Context, string, string, io.Reader, string) (*api.UploadResult, error) {
	return nil, nil
}

func (s *stubClient) Ping(context.Context) error { return nil }

// stubStore implements credentials.Store in memory.
type stubStore struct {
	token string
}

func (s *stubStore) Load(context.Context) (string, error)     { return s.token, nil }
func (s *stubStore) Save(_ context.Context, tok string) error { s.token = tok; return nil }
func (s *stubStore) Clear(context.Context) error              { s.token = ""; return nil }

// stubHistory implements history.Repository in memory.
type stubHistory struct {
	records []models.UploadRecord
}

func (h *stubHistory) Insert(_ context.Context, rec *models.UploadRecord) error {
	h.records = append(h.records, *rec)
	return nil
}

func (h *stubHistory) GetAll(context.Context) ([]models.UploadRecord, error) {
	return h.records, nil
}

// stubInputs replaces the interactive input seams. Each call to getSimpleText
// pops the next line; getPassword always returns password.
func stubInputs(t *testing.T, lines []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		line := lines[0]
		lines = lines[1:]
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func silencePrint(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		var parts []string
		for _, a := range args {
			if s, ok := a.(string); ok {
				parts = append(parts, s)
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func newTestApp(client api.Client, hist *stubHistory) *App {
	logger := logging.NewText(io.Discard, slog.LevelError)
	session := services.NewSessionController(client, &stubStore{}, logger)
	upload := services.NewUploadController(client, session, hist, logger)
	return &App{
		log:     logger,
		client:  client,
		session: session,
		upload:  upload,
		history: hist,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func TestLoginCommand(t *testing.T) {
	printed := silencePrint(t)
	stubInputs(t, []string{"a@x.com"}, []byte("secret"))

	client := &stubClient{loginRes: &api.AuthResult{
		AccessToken: "t1",
		User:        models.User{Email: "a@x.com"},
	}}
	a := newTestApp(client, &stubHistory{})

	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, "a@x.com", client.lastLoginEmail)
	require.True(t, a.isLoggedIn())
	require.Contains(t, *printed, "Autenticação realizada com sucesso!")
}

func TestRegisterCommand(t *testing.T) {
	printed := silencePrint(t)
	stubInputs(t, []string{"b@x.com", "pid", "sec", "pol"}, []byte("secret"))

	client := &stubClient{registerRes: &api.AuthResult{
		AccessToken: "t2",
		User:        models.User{Email: "b@x.com"},
	}}
	a := newTestApp(client, &stubHistory{})

	require.NoError(t, a.Register(context.Background()))
	require.Equal(t, models.AuthForm{
		Email:             "b@x.com",
		Password:          "secret",
		PartnerUserID:     "pid",
		PartnerUserSecret: "sec",
		PolicyID:          "pol",
	}, client.lastRegisterForm)
	require.True(t, a.isLoggedIn())
	require.Contains(t, *printed, "Autenticação realizada com sucesso!")
}

func TestLogoutCommand(t *testing.T) {
	printed := silencePrint(t)
	stubInputs(t, []string{"a@x.com"}, []byte("secret"))

	client := &stubClient{loginRes: &api.AuthResult{
		AccessToken: "t1",
		User:        models.User{Email: "a@x.com"},
	}}
	a := newTestApp(client, &stubHistory{})

	require.NoError(t, a.Login(context.Background()))
	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
	require.Contains(t, *printed, "Logout realizado com sucesso")
}

func TestStatusCommand(t *testing.T) {
	printed := silencePrint(t)

	a := newTestApp(&stubClient{}, &stubHistory{})
	require.NoError(t, a.Status(context.Background()))
	require.Contains(t, *printed, "Not logged in")
}

func TestHistoryCommand_Empty(t *testing.T) {
	printed := silencePrint(t)

	a := newTestApp(&stubClient{}, &stubHistory{})
	require.NoError(t, a.History(context.Background()))
	require.Contains(t, *printed, "Nenhum upload registrado")
}

func TestHistoryCommand_ListsRecords(t *testing.T) {
	printed := silencePrint(t)

	hist := &stubHistory{records: []models.UploadRecord{
		{ID: "1", FileName: "despesas.xlsx", EmployeeEmail: "a@x.com", ExpenseCount: 3, TotalAmount: 99.9},
	}}
	a := newTestApp(&stubClient{}, hist)

	require.NoError(t, a.History(context.Background()))

	found := false
	for _, line := range *printed {
		if strings.Contains(line, "despesas.xlsx") && strings.Contains(line, "3 despesas") {
			found = true
		}
	}
	require.True(t, found, "history line not printed: %v", *printed)
}
