package transaction

import (
	"context"
	"time"
)

// Stats are per-type completed sums over an optional date range. Zero rows
// yield zeros, never an error.
type Stats struct {
	TotalDisbursements float64 `json:"total_disbursements"`
	TotalRepayments    float64 `json:"total_repayments"`
	TotalFees          float64 `json:"total_fees"`
	TransactionCount   int64   `json:"transaction_count"`
}

// ListFilter narrows the admin transaction listing. Zero values mean "any".
type ListFilter struct {
	Type Type
	From time.Time
	To   time.Time
}

// Repository is append-only: no update or delete is exposed.
type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByReference(ctx context.Context, reference string) (*Transaction, error)
	ListByLoanID(ctx context.Context, loanID uint64) ([]Transaction, error)
	ListByUserID(ctx context.Context, userID string) ([]Transaction, error)
	List(ctx context.Context, page, limit int, f ListFilter) ([]Transaction, int64, error)
	Stats(ctx context.Context, from, to time.Time) (*Stats, error)
}
