package loanmock

import (
	"context"
	"errors"
	"time"

	domain "campuslend-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones error out.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetActiveByStudentIDFn func(ctx context.Context, studentID uint64) (*domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	ListByStudentIDFn      func(ctx context.Context, studentID uint64, status domain.Status) ([]domain.Loan, error)
	ListFn                 func(ctx context.Context, page, limit int, status domain.Status) ([]domain.Loan, int64, error)
	ListDueBeforeFn        func(ctx context.Context, cutoff time.Time) ([]domain.Loan, error)
	StatsFn                func(ctx context.Context) (*domain.Stats, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetActiveByStudentID(ctx context.Context, studentID uint64) (*domain.Loan, error) {
	if m.GetActiveByStudentIDFn != nil {
		return m.GetActiveByStudentIDFn(ctx, studentID)
	}
	return nil, errUnimplemented
}
func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *Repo) ListByStudentID(ctx context.Context, studentID uint64, status domain.Status) ([]domain.Loan, error) {
	if m.ListByStudentIDFn != nil {
		return m.ListByStudentIDFn(ctx, studentID, status)
	}
	return nil, errUnimplemented
}
func (m *Repo) List(ctx context.Context, page, limit int, status domain.Status) ([]domain.Loan, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, limit, status)
	}
	return nil, 0, errUnimplemented
}
func (m *Repo) ListDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Loan, error) {
	if m.ListDueBeforeFn != nil {
		return m.ListDueBeforeFn(ctx, cutoff)
	}
	return nil, errUnimplemented
}
func (m *Repo) Stats(ctx context.Context) (*domain.Stats, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return nil, errUnimplemented
}
