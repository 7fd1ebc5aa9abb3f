package transaction

import (
	"context"
	"errors"

	loanDomain "campuslend-backend/internal/domain/loan"
	domain "campuslend-backend/internal/domain/transaction"

	"gorm.io/gorm"
)

// Usecase is the read side of the audit log; writes happen only through
// the domain constructors inside lifecycle transactions.
type Usecase struct {
	repo     domain.Repository
	loanRepo loanDomain.Repository
}

func NewUsecase(repo domain.Repository, loanRepo loanDomain.Repository) *Usecase {
	return &Usecase{repo: repo, loanRepo: loanRepo}
}

type ListResult struct {
	Transactions []domain.Transaction
	Total        int64
}

func (u *Usecase) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	t, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]domain.Transaction, error) {
	l, err := u.loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return u.repo.ListByLoanID(ctx, l.ID)
}

func (u *Usecase) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return u.repo.ListByUserID(ctx, userID)
}

func (u *Usecase) List(ctx context.Context, page, limit int, f domain.ListFilter) (*ListResult, error) {
	ts, total, err := u.repo.List(ctx, page, limit, f)
	if err != nil {
		return nil, err
	}
	return &ListResult{Transactions: ts, Total: total}, nil
}
