package loan

import (
	"context"
	"errors"
	"time"

	domain "campuslend-backend/internal/domain/loan"
	studentDomain "campuslend-backend/internal/domain/student"
	txDomain "campuslend-backend/internal/domain/transaction"
	"campuslend-backend/internal/domain/uow"
	"campuslend-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo     domain.Repository
	students studentDomain.Repository
	uow      uow.UnitOfWork
	fees     domain.FeePolicy
	scoring  studentDomain.ScorePolicy

	now func() time.Time
}

func NewUsecase(repo domain.Repository, students studentDomain.Repository, tx uow.UnitOfWork, fees domain.FeePolicy, scoring studentDomain.ScorePolicy) *Usecase {
	return &Usecase{
		repo:     repo,
		students: students,
		uow:      tx,
		fees:     fees,
		scoring:  scoring,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Request creates a loan application in pending. All checks run before the
// insert, inside the same transaction: the locking active-loan read
// serializes two concurrent requests for one student.
func (u *Usecase) Request(ctx context.Context, userID string, in RequestLoanInput) (*LoanDTO, error) {
	var dto *LoanDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Students.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return studentDomain.ErrNotFound
			}
			return err
		}

		// Limit check first: eligibility never excuses an over-limit amount.
		if in.Amount > s.MaxLoanAmount {
			return domain.ErrLimitExceeded
		}
		if !s.EligibleForLoan {
			return domain.ErrIneligible
		}

		if _, err := r.Loans.GetActiveByStudentID(ctx, s.ID); err == nil {
			return domain.ErrActiveLoanExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := u.now()
		if !domain.ValidDueDate(in.DueDate, now, u.fees) {
			return domain.ErrInvalidDueDate
		}

		terms := domain.QuoteTerms(in.Amount, u.fees)
		l := &domain.Loan{
			LoanID:             id.NewID32(),
			LoanReference:      id.NewReference("LN"),
			StudentID:          s.ID,
			Amount:             in.Amount,
			FeePercentage:      terms.FeePercentage,
			FeeAmount:          terms.FeeAmount,
			TotalAmount:        terms.TotalAmount,
			OutstandingBalance: terms.TotalAmount,
			Purpose:            in.Purpose,
			PurposeDescription: in.PurposeDescription,
			Status:             domain.StatusPending,
			DueDate:            in.DueDate,
			GracePeriodDays:    u.fees.GracePeriodDays,
			LateFee:            terms.LateFee,
			StatusUpdatedAt:    now,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Terms quotes the fee arithmetic for an amount without creating anything.
func (u *Usecase) Terms(ctx context.Context, userID string, amount float64) (*TermsDTO, error) {
	s, err := u.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studentDomain.ErrNotFound
		}
		return nil, err
	}
	return &TermsDTO{
		Terms:         domain.QuoteTerms(amount, u.fees),
		MaxLoanAmount: s.MaxLoanAmount,
		IsEligible:    s.EligibleForLoan,
	}, nil
}

func (u *Usecase) Approve(ctx context.Context, loanID, adminID, notes string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidState
		}
		now := u.now()
		l.Status = domain.StatusApproved
		l.ApprovedBy = adminID
		l.ApprovedAt = &now
		l.AdminNotes = notes
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	return dto, wrapNotFound(err)
}

func (u *Usecase) Reject(ctx context.Context, loanID, adminID, reason string) (*LoanDTO, error) {
	if reason == "" {
		return nil, domain.ErrReasonRequired
	}
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrInvalidState
		}
		l.Status = domain.StatusRejected
		l.RejectionReason = reason
		l.ApprovedBy = adminID
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	return dto, wrapNotFound(err)
}

// Disburse moves an approved loan to active and, in the same transaction,
// bumps the student's borrow aggregates and appends the disbursement and
// platform-fee audit rows.
func (u *Usecase) Disburse(ctx context.Context, loanID, adminID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusApproved {
			return domain.ErrInvalidState
		}
		now := u.now()
		l.Status = domain.StatusDisbursed
		l.DisbursedAt = &now
		l.StatusUpdatedAt = now

		s, err := r.Students.GetByIDForUpdate(ctx, l.StudentID)
		if err != nil {
			return err
		}
		s.RecordBorrow(l.Amount)
		if err := r.Students.Save(ctx, s); err != nil {
			return err
		}

		if err := r.Transactions.Create(ctx, txDomain.NewDisbursement(l, s.UserID)); err != nil {
			return err
		}
		if err := r.Transactions.Create(ctx, txDomain.NewFee(l, s.UserID)); err != nil {
			return err
		}

		// Settlement is immediate in this design.
		l.Status = domain.StatusActive
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	return dto, wrapNotFound(err)
}

// ApplyRepayment runs inside the caller's transaction (the repayment
// processor's). It mutates the loan, bumps the repaid aggregate for every
// payment, and on full repayment applies the trust-score feedback loop
// judged strictly against the due date.
func (u *Usecase) ApplyRepayment(ctx context.Context, r uow.Repos, l *domain.Loan, amount float64) error {
	now := u.now()
	fullyRepaid := l.ApplyPayment(amount, now)
	if err := r.Loans.Save(ctx, l); err != nil {
		return err
	}

	s, err := r.Students.GetByIDForUpdate(ctx, l.StudentID)
	if err != nil {
		return err
	}
	s.RecordRepay(amount)
	if fullyRepaid {
		s.RecordRepaymentOutcome(l.RepaidOnTime(), u.scoring)
	}
	return r.Students.Save(ctx, s)
}

// MarkOverdue transitions an active loan past its grace period to overdue
// and appends the late-fee audit row.
func (u *Usecase) MarkOverdue(ctx context.Context, loanID, adminID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusActive {
			return domain.ErrInvalidState
		}
		now := u.now()
		if !l.PastGracePeriod(now) {
			return domain.ErrNotPastDue
		}
		l.Status = domain.StatusOverdue
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		s, err := r.Students.GetByIDForUpdate(ctx, l.StudentID)
		if err != nil {
			return err
		}
		if err := r.Transactions.Create(ctx, txDomain.NewLateFee(l, s.UserID)); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	return dto, wrapNotFound(err)
}

func (u *Usecase) MarkDefaulted(ctx context.Context, loanID, adminID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusOverdue {
			return domain.ErrInvalidState
		}
		l.Status = domain.StatusDefaulted
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	return dto, wrapNotFound(err)
}

// OverdueCandidates lists active loans whose grace period has elapsed.
func (u *Usecase) OverdueCandidates(ctx context.Context) ([]LoanDTO, error) {
	now := u.now()
	due, err := u.repo.ListDueBefore(ctx, now)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(due))
	for i := range due {
		if due[i].PastGracePeriod(now) {
			out = append(out, *toDTO(&due[i]))
		}
	}
	return out, nil
}

// Get returns a loan; when userID is set, ownership is enforced.
func (u *Usecase) Get(ctx context.Context, loanID, userID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	if userID != "" {
		s, err := u.students.GetByUserID(ctx, userID)
		if err != nil {
			return nil, domain.ErrForbidden
		}
		if l.StudentID != s.ID {
			return nil, domain.ErrForbidden
		}
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByStudent(ctx context.Context, userID string, status domain.Status) ([]LoanDTO, error) {
	s, err := u.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studentDomain.ErrNotFound
		}
		return nil, err
	}
	ls, err := u.repo.ListByStudentID(ctx, s.ID, status)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) List(ctx context.Context, page, limit int, status domain.Status) (*ListResult, error) {
	ls, total, err := u.repo.List(ctx, page, limit, status)
	if err != nil {
		return nil, err
	}
	return &ListResult{Loans: toDTOs(ls), Total: total}, nil
}

func (u *Usecase) Stats(ctx context.Context) (*domain.Stats, error) {
	return u.repo.Stats(ctx)
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
