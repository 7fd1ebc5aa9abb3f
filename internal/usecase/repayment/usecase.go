package repayment

import (
	"context"
	"errors"
	"fmt"
	"time"

	loanDomain "campuslend-backend/internal/domain/loan"
	domain "campuslend-backend/internal/domain/repayment"
	studentDomain "campuslend-backend/internal/domain/student"
	txDomain "campuslend-backend/internal/domain/transaction"
	"campuslend-backend/internal/domain/uow"
	loanuc "campuslend-backend/internal/usecase/loan"
	"campuslend-backend/pkg/id"

	"gorm.io/gorm"
)

// Gateway stands in for the external payment processor. The production
// implementation always succeeds; tests inject failing ones.
type Gateway interface {
	Process(ctx context.Context, r *domain.Repayment) (externalRef string, err error)
}

// SimulatedGateway settles every payment immediately.
type SimulatedGateway struct{}

func (SimulatedGateway) Process(ctx context.Context, r *domain.Repayment) (string, error) {
	return id.NewReference("EXT"), nil
}

type Usecase struct {
	repo     domain.Repository
	loanRepo loanDomain.Repository
	students studentDomain.Repository
	loans    *loanuc.Usecase
	uow      uow.UnitOfWork
	gateway  Gateway

	now func() time.Time
}

func NewUsecase(repo domain.Repository, loanRepo loanDomain.Repository, students studentDomain.Repository, loans *loanuc.Usecase, tx uow.UnitOfWork, gw Gateway) *Usecase {
	return &Usecase{
		repo:     repo,
		loanRepo: loanRepo,
		students: students,
		loans:    loans,
		uow:      tx,
		gateway:  gw,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Make accepts a payment against a loan. Every check runs before the
// repayment row exists; the pending row is committed first, then processed
// synchronously. The completion cascade (repayment, loan, ledger, audit
// row) commits as one transaction; a gateway failure leaves only a failed
// repayment behind.
func (u *Usecase) Make(ctx context.Context, userID string, in MakeRepaymentInput) (*RepaymentDTO, error) {
	s, err := u.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studentDomain.ErrNotFound
		}
		return nil, err
	}

	var rp *domain.Repayment
	err = u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.StudentID != s.ID {
			return loanDomain.ErrForbidden
		}
		if !l.Repayable() {
			return domain.ErrInvalidLoanState
		}
		if in.Amount <= 0 {
			return domain.ErrAmountExceedsBalance
		}
		if in.Amount > l.OutstandingBalance {
			return domain.ErrAmountExceedsBalance
		}
		if err := domain.RequiredDetail(in.Method, in.PhoneNumber, in.BankAccount); err != nil {
			return err
		}

		rp = &domain.Repayment{
			RepaymentID:        id.NewID32(),
			RepaymentReference: id.NewReference("REP"),
			LoanID:             l.ID,
			LoanReference:      l.LoanReference,
			Amount:             in.Amount,
			Method:             in.Method,
			Status:             domain.StatusPending,
			PhoneNumber:        in.PhoneNumber,
			BankAccount:        in.BankAccount,
		}
		return r.Repayments.Create(ctx, rp)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}

	return u.process(ctx, rp.RepaymentID, in.LoanID, s.UserID)
}

// process drives pending → processing → completed and cascades the
// completed payment into the loan, the student ledger and the audit log
// inside one transaction. On gateway failure the transaction rolls back
// and the repayment is marked failed outside it.
func (u *Usecase) process(ctx context.Context, repaymentID, loanID, userID string) (*RepaymentDTO, error) {
	var (
		dto        *RepaymentDTO
		failReason string
	)

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		rp, err := r.Repayments.GetByRepaymentID(ctx, repaymentID)
		if err != nil {
			return err
		}
		if rp.Status != domain.StatusPending {
			return fmt.Errorf("repayment %s is not pending", rp.RepaymentID)
		}

		// Re-check under the loan lock: another payment may have completed
		// between acceptance and processing.
		if !l.Repayable() || rp.Amount > l.OutstandingBalance {
			failReason = "outstanding balance changed before processing"
			return domain.ErrProcessingFailed
		}

		rp.Status = domain.StatusProcessing
		if err := r.Repayments.Save(ctx, rp); err != nil {
			return err
		}

		extRef, perr := u.gateway.Process(ctx, rp)
		if perr != nil {
			failReason = perr.Error()
			return domain.ErrProcessingFailed
		}

		now := u.now()
		rp.Status = domain.StatusCompleted
		rp.ExternalReference = extRef
		rp.ProcessedAt = &now
		if err := r.Repayments.Save(ctx, rp); err != nil {
			return err
		}

		if err := u.loans.ApplyRepayment(ctx, r, l, rp.Amount); err != nil {
			return err
		}
		if err := r.Transactions.Create(ctx, txDomain.NewRepayment(rp, l, userID)); err != nil {
			return err
		}
		dto = toDTO(rp)
		return nil
	})
	if errors.Is(err, domain.ErrProcessingFailed) {
		if mErr := u.markFailed(ctx, repaymentID, failReason); mErr != nil {
			return nil, errors.Join(err, mErr)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// markFailed runs outside the rolled-back processing transaction so the
// failed attempt stays on record.
func (u *Usecase) markFailed(ctx context.Context, repaymentID, reason string) error {
	rp, err := u.repo.GetByRepaymentID(ctx, repaymentID)
	if err != nil {
		return err
	}
	rp.Status = domain.StatusFailed
	rp.FailureReason = reason
	return u.repo.Save(ctx, rp)
}

func (u *Usecase) Get(ctx context.Context, repaymentID string) (*RepaymentDTO, error) {
	rp, err := u.repo.GetByRepaymentID(ctx, repaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(rp), nil
}

// ListByLoan returns the payments for one loan, enforcing ownership when
// userID is set.
func (u *Usecase) ListByLoan(ctx context.Context, loanID, userID string) ([]RepaymentDTO, error) {
	l, err := u.loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	if userID != "" {
		s, err := u.students.GetByUserID(ctx, userID)
		if err != nil || l.StudentID != s.ID {
			return nil, loanDomain.ErrForbidden
		}
	}
	rs, err := u.repo.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

// ListByStudent returns every payment across the student's loans.
func (u *Usecase) ListByStudent(ctx context.Context, userID string) ([]RepaymentDTO, error) {
	s, err := u.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studentDomain.ErrNotFound
		}
		return nil, err
	}
	ls, err := u.loanRepo.ListByStudentID(ctx, s.ID, "")
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(ls))
	for i := range ls {
		ids = append(ids, ls[i].ID)
	}
	rs, err := u.repo.ListByLoanIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func (u *Usecase) List(ctx context.Context, page, limit int) (*ListResult, error) {
	rs, total, err := u.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &ListResult{Repayments: toDTOs(rs), Total: total}, nil
}
