package mysql

import (
	"context"

	repaymentDomain "campuslend-backend/internal/domain/repayment"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository { return &RepaymentRepository{db: db} }

func (r *RepaymentRepository) Create(ctx context.Context, p *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *RepaymentRepository) Save(ctx context.Context, p *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *RepaymentRepository) GetByRepaymentID(ctx context.Context, repaymentID string) (*repaymentDomain.Repayment, error) {
	var out repaymentDomain.Repayment
	res := r.db.WithContext(ctx).Where("repayment_id = ?", repaymentID).First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]repaymentDomain.Repayment, error) {
	var out []repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) ListByLoanIDs(ctx context.Context, loanIDs []uint64) ([]repaymentDomain.Repayment, error) {
	if len(loanIDs) == 0 {
		return nil, nil
	}
	var out []repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("loan_id IN ?", loanIDs).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) List(ctx context.Context, page, limit int) ([]repaymentDomain.Repayment, int64, error) {
	var (
		out   []repaymentDomain.Repayment
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&repaymentDomain.Repayment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out)
	return out, total, res.Error
}
