package repayment

import "context"

type Repository interface {
	Create(ctx context.Context, r *Repayment) error
	GetByRepaymentID(ctx context.Context, repaymentID string) (*Repayment, error)
	Save(ctx context.Context, r *Repayment) error
	ListByLoanID(ctx context.Context, loanID uint64) ([]Repayment, error)
	ListByLoanIDs(ctx context.Context, loanIDs []uint64) ([]Repayment, error)
	List(ctx context.Context, page, limit int) ([]Repayment, int64, error)
}
