package transactionmock

import (
	"context"
	"errors"
	"time"

	domain "campuslend-backend/internal/domain/transaction"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("transactionmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, t *domain.Transaction) error
	GetByReferenceFn func(ctx context.Context, reference string) (*domain.Transaction, error)
	ListByLoanIDFn   func(ctx context.Context, loanID uint64) ([]domain.Transaction, error)
	ListByUserIDFn   func(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListFn           func(ctx context.Context, page, limit int, f domain.ListFilter) ([]domain.Transaction, int64, error)
	StatsFn          func(ctx context.Context, from, to time.Time) (*domain.Stats, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}
func (m *Repo) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	if m.GetByReferenceFn != nil {
		return m.GetByReferenceFn(ctx, reference)
	}
	return nil, errUnimplemented
}
func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Transaction, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}
func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}
func (m *Repo) List(ctx context.Context, page, limit int, f domain.ListFilter) ([]domain.Transaction, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, limit, f)
	}
	return nil, 0, errUnimplemented
}
func (m *Repo) Stats(ctx context.Context, from, to time.Time) (*domain.Stats, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx, from, to)
	}
	return nil, errUnimplemented
}
