package uow

import (
	"context"

	"campuslend-backend/internal/domain/loan"
	"campuslend-backend/internal/domain/repayment"
	"campuslend-backend/internal/domain/student"
	"campuslend-backend/internal/domain/transaction"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Students     student.Repository
	Loans        loan.Repository
	Repayments   repayment.Repository
	Transactions transaction.Repository
}

// UnitOfWork is the single transactional boundary for the disbursement and
// repayment cascades: loan mutation, ledger update and audit append either
// all commit or all roll back.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
