package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Z3MAX/Expensify/internal/client/services"
)

// SelectFile picks the spreadsheet to submit. The controller validates the
// extension; the outcome notification, if any, is printed.
func (a *App) SelectFile(ctx context.Context, path string) error {
	snap, err := a.upload.SelectFile(path)
	if errors.Is(err, services.ErrBusy) {
		printlnFn("Upload em andamento")
		return nil
	}
	if err != nil {
		notify(snap.Notification)
		return nil
	}

	printlnFn("Selecionado:", snap.File.Name)
	return nil
}

// SetEmail sets the employee e-mail the expenses will be imported for.
func (a *App) SetEmail(ctx context.Context, email string) error {
	snap, err := a.upload.SetEmployeeEmail(email)
	if errors.Is(err, services.ErrBusy) {
		printlnFn("Upload em andamento")
		return nil
	}
	if err != nil {
		notify(snap.Notification)
		return nil
	}

	printlnFn("Employee e-mail:", snap.EmployeeEmail)
	return nil
}

// Submit sends the selected spreadsheet to the backend and prints the
// outcome.
func (a *App) Submit(ctx context.Context) error {
	snap, err := a.upload.Submit(ctx)
	if errors.Is(err, services.ErrBusy) {
		printlnFn("Upload em andamento")
		return nil
	}
	notify(snap.Notification)
	return nil
}

// History lists past accepted submissions, newest first.
func (a *App) History(ctx context.Context) error {
	recs, err := a.history.GetAll(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read upload history", "error", err)
		printlnFn("Erro ao ler o histórico")
		return err
	}

	if len(recs) == 0 {
		printlnFn("Nenhum upload registrado")
		return nil
	}

	for _, r := range recs {
		printlnFn(fmt.Sprintf("%s  %s  %s  %d despesas  R$ %.2f",
			r.CreatedAt.Format("2006-01-02 15:04"), r.FileName, r.EmployeeEmail,
			r.ExpenseCount, r.TotalAmount))
	}
	return nil
}
