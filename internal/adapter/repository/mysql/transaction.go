package mysql

import (
	"context"
	"time"

	txDomain "campuslend-backend/internal/domain/transaction"

	"gorm.io/gorm"
)

// TransactionRepository is append-only on purpose: no Save or Delete.
type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *txDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*txDomain.Transaction, error) {
	var out txDomain.Transaction
	res := r.db.WithContext(ctx).Where("reference = ?", reference).First(&out)
	return &out, res.Error
}

func (r *TransactionRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID string) ([]txDomain.Transaction, error) {
	var out []txDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *TransactionRepository) List(ctx context.Context, page, limit int, f txDomain.ListFilter) ([]txDomain.Transaction, int64, error) {
	var (
		out   []txDomain.Transaction
		total int64
	)
	apply := func(q *gorm.DB) *gorm.DB {
		if f.Type != "" {
			q = q.Where("type = ?", f.Type)
		}
		if !f.From.IsZero() && !f.To.IsZero() {
			q = q.Where("created_at BETWEEN ? AND ?", f.From, f.To)
		}
		return q
	}
	if err := apply(r.db.WithContext(ctx).Model(&txDomain.Transaction{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	res := apply(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out)
	return out, total, res.Error
}

func (r *TransactionRepository) Stats(ctx context.Context, from, to time.Time) (*txDomain.Stats, error) {
	var s txDomain.Stats
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&txDomain.Transaction{})
		if !from.IsZero() && !to.IsZero() {
			q = q.Where("created_at BETWEEN ? AND ?", from, to)
		}
		return q
	}

	sums := []struct {
		dst *float64
		typ txDomain.Type
	}{
		{&s.TotalDisbursements, txDomain.TypeDisbursement},
		{&s.TotalRepayments, txDomain.TypeRepayment},
		{&s.TotalFees, txDomain.TypeFee},
	}
	for _, c := range sums {
		if err := base().
			Where("type = ? AND status = ?", c.typ, txDomain.StatusCompleted).
			Select("COALESCE(SUM(amount), 0)").
			Scan(c.dst).Error; err != nil {
			return nil, err
		}
	}
	if err := base().Count(&s.TransactionCount).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
