package stats

import (
	"context"
	"time"

	loanDomain "campuslend-backend/internal/domain/loan"
	txDomain "campuslend-backend/internal/domain/transaction"
)

// Usecase aggregates read-only rollups for the admin dashboard. It owns no
// state and performs no mutation; empty tables produce zeroed stats.
type Usecase struct {
	loans loanDomain.Repository
	txs   txDomain.Repository
}

func NewUsecase(loans loanDomain.Repository, txs txDomain.Repository) *Usecase {
	return &Usecase{loans: loans, txs: txs}
}

type Dashboard struct {
	Loans        *loanDomain.Stats `json:"loans"`
	Transactions *txDomain.Stats   `json:"transactions"`
}

func (u *Usecase) LoanStats(ctx context.Context) (*loanDomain.Stats, error) {
	return u.loans.Stats(ctx)
}

func (u *Usecase) TransactionStats(ctx context.Context, from, to time.Time) (*txDomain.Stats, error) {
	return u.txs.Stats(ctx, from, to)
}

func (u *Usecase) Dashboard(ctx context.Context) (*Dashboard, error) {
	ls, err := u.loans.Stats(ctx)
	if err != nil {
		return nil, err
	}
	ts, err := u.txs.Stats(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	return &Dashboard{Loans: ls, Transactions: ts}, nil
}
