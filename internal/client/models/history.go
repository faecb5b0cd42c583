package models

import "time"

// UploadRecord is one locally kept row of upload history, written after the
// backend confirms a submission.
type UploadRecord struct {
	ID            string
	FileName      string
	EmployeeEmail string
	ExpenseCount  int
	TotalAmount   float64
	CreatedAt     time.Time
}
