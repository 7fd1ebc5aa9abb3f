package repaymentmock

import (
	"context"
	"errors"

	domain "campuslend-backend/internal/domain/repayment"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("repaymentmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, r *domain.Repayment) error
	GetByRepaymentIDFn func(ctx context.Context, repaymentID string) (*domain.Repayment, error)
	SaveFn             func(ctx context.Context, r *domain.Repayment) error
	ListByLoanIDFn     func(ctx context.Context, loanID uint64) ([]domain.Repayment, error)
	ListByLoanIDsFn    func(ctx context.Context, loanIDs []uint64) ([]domain.Repayment, error)
	ListFn             func(ctx context.Context, page, limit int) ([]domain.Repayment, int64, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Repayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Repo) GetByRepaymentID(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
	if m.GetByRepaymentIDFn != nil {
		return m.GetByRepaymentIDFn(ctx, repaymentID)
	}
	return nil, errUnimplemented
}
func (m *Repo) Save(ctx context.Context, r *domain.Repayment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Repayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}
func (m *Repo) ListByLoanIDs(ctx context.Context, loanIDs []uint64) ([]domain.Repayment, error) {
	if m.ListByLoanIDsFn != nil {
		return m.ListByLoanIDsFn(ctx, loanIDs)
	}
	return nil, errUnimplemented
}
func (m *Repo) List(ctx context.Context, page, limit int) ([]domain.Repayment, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, limit)
	}
	return nil, 0, errUnimplemented
}
