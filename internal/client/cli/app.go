package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/Z3MAX/Expensify/internal/client/api"
	"github.com/Z3MAX/Expensify/internal/client/config"
	"github.com/Z3MAX/Expensify/internal/client/models"
	"github.com/Z3MAX/Expensify/internal/client/repositories/credentials"
	"github.com/Z3MAX/Expensify/internal/client/repositories/history"
	"github.com/Z3MAX/Expensify/internal/client/services"
	"github.com/Z3MAX/Expensify/internal/client/storage"
	"github.com/Z3MAX/Expensify/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	client  api.Client
	session *services.SessionController
	upload  *services.UploadController
	history history.Repository
	reader  *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, logger)

	creds := credentials.NewSQLiteStore(db)
	hist := history.NewSQLiteRepository(db)

	session := services.NewSessionController(apiClient, creds, logger)
	upload := services.NewUploadController(apiClient, session, hist, logger)

	// a fresh session pre-fills the upload form with the account's e-mail
	session.OnAuthenticated(func(u models.User) {
		_, _ = upload.SetEmployeeEmail(u.Email)
	})

	return &App{
		config:  c,
		log:     logger,
		client:  apiClient,
		session: session,
		upload:  upload,
		history: hist,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().State == services.StateAuthenticated
}

// Run restores a previously saved session and starts the REPL. It blocks
// until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	snap := a.session.Restore(ctx)
	if snap.State == services.StateAuthenticated {
		printlnFn("Sessão restaurada para", snap.User.Email)
	}

	printlnFn("Expensify importer (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status builds the prompt suffix from the current session.
func (a *App) status() string {
	snap := a.session.Snapshot()
	switch snap.State {
	case services.StateAuthenticated:
		return snap.User.Email
	case services.StateValidating:
		return "validating"
	default:
		return "offline"
	}
}

// notify prints the operation's outcome to the user. Error notifications are
// prefixed so they stand out in the plain-text REPL.
func notify(n *models.Notification) {
	if n == nil {
		return
	}
	if n.Kind == models.NotificationError {
		printlnFn("Erro:", n.Text)
		return
	}
	printlnFn(n.Text)
}
