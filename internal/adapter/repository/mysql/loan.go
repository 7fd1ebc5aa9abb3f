package mysql

import (
	"context"
	"time"

	loanDomain "campuslend-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

// GetActiveByStudentID must run inside the same transaction that inserts a
// new loan; the locking read serializes concurrent requests so two loans
// cannot both pass the no-active-loan check.
func (r *LoanRepository) GetActiveByStudentID(ctx context.Context, studentID uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ? AND status IN ?", studentID, loanDomain.NonTerminalStatuses).
		Order("status_updated_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByStudentID(ctx context.Context, studentID uint64, status loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	q := r.db.WithContext(ctx).Where("student_id = ?", studentID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, page, limit int, status loanDomain.Status) ([]loanDomain.Loan, int64, error) {
	var (
		out   []loanDomain.Loan
		total int64
	)
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	res := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out)
	return out, total, res.Error
}

// ListDueBefore returns active loans whose due date passed before cutoff,
// the candidates for overdue marking.
func (r *LoanRepository) ListDueBefore(ctx context.Context, cutoff time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", loanDomain.StatusActive, cutoff).
		Order("due_date ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) Stats(ctx context.Context) (*loanDomain.Stats, error) {
	var s loanDomain.Stats
	model := func() *gorm.DB { return r.db.WithContext(ctx).Model(&loanDomain.Loan{}) }

	if err := model().Count(&s.TotalLoans).Error; err != nil {
		return nil, err
	}
	counts := []struct {
		dst      *int64
		statuses []loanDomain.Status
	}{
		{&s.PendingLoans, []loanDomain.Status{loanDomain.StatusPending}},
		{&s.ActiveLoans, []loanDomain.Status{loanDomain.StatusActive, loanDomain.StatusDisbursed}},
		{&s.RepaidLoans, []loanDomain.Status{loanDomain.StatusRepaid}},
		{&s.OverdueLoans, []loanDomain.Status{loanDomain.StatusOverdue}},
	}
	for _, c := range counts {
		if err := model().Where("status IN ?", c.statuses).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	disbursedStatuses := []loanDomain.Status{
		loanDomain.StatusActive, loanDomain.StatusDisbursed,
		loanDomain.StatusRepaid, loanDomain.StatusOverdue, loanDomain.StatusDefaulted,
	}
	if err := model().
		Where("status IN ?", disbursedStatuses).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.TotalDisbursed).Error; err != nil {
		return nil, err
	}
	if err := model().
		Select("COALESCE(SUM(amount_repaid), 0)").
		Scan(&s.TotalRepaid).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
