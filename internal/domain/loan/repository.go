package loan

import (
	"context"
	"time"
)

// Stats are the read-side rollups for the dashboard. Zero rows yield
// zeros, never an error.
type Stats struct {
	TotalLoans     int64   `json:"total_loans"`
	PendingLoans   int64   `json:"pending_loans"`
	ActiveLoans    int64   `json:"active_loans"`
	RepaidLoans    int64   `json:"repaid_loans"`
	OverdueLoans   int64   `json:"overdue_loans"`
	TotalDisbursed float64 `json:"total_disbursed"`
	TotalRepaid    float64 `json:"total_repaid"`
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// Locking read used inside unit-of-work cascades.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// GetActiveByStudentID returns the loan in a non-terminal status for
	// the student, or gorm.ErrRecordNotFound.
	GetActiveByStudentID(ctx context.Context, studentID uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	ListByStudentID(ctx context.Context, studentID uint64, status Status) ([]Loan, error)
	List(ctx context.Context, page, limit int, status Status) ([]Loan, int64, error)
	ListDueBefore(ctx context.Context, cutoff time.Time) ([]Loan, error)
	Stats(ctx context.Context) (*Stats, error)
}
