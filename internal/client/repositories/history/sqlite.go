package history

import (
	"context"
	"fmt"

	"github.com/Z3MAX/Expensify/internal/client/models"
	"github.com/Z3MAX/Expensify/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.UploadRecord) error {
	query := `INSERT INTO upload_history
		(id, file_name, employee_email, expense_count, total_amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.FileName, rec.EmployeeEmail, rec.ExpenseCount, rec.TotalAmount, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert upload record: %w", err)
	}
	return nil
}

// GetAll lists upload records, most recent first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.UploadRecord, error) {
	query := `SELECT id, file_name, employee_email, expense_count, total_amount, created_at
		FROM upload_history ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select upload history: %w", err)
	}
	defer rows.Close()

	var result []models.UploadRecord
	for rows.Next() {
		var item models.UploadRecord
		if err := rows.Scan(&item.ID, &item.FileName, &item.EmployeeEmail,
			&item.ExpenseCount, &item.TotalAmount, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
