// Package history keeps a local record of spreadsheet submissions the
// backend accepted.
package history

import (
	"context"

	"github.com/Z3MAX/Expensify/internal/client/models"
)

type Repository interface {
	Insert(ctx context.Context, rec *models.UploadRecord) error
	GetAll(ctx context.Context) ([]models.UploadRecord, error)
}
