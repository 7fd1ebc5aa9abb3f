package mysql

import (
	"context"

	studentDomain "campuslend-backend/internal/domain/student"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudentRepository struct{ db *gorm.DB }

func NewStudentRepository(db *gorm.DB) *StudentRepository { return &StudentRepository{db: db} }

func (r *StudentRepository) Create(ctx context.Context, s *studentDomain.Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StudentRepository) Save(ctx context.Context, s *studentDomain.Student) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&out)
	return &out, res.Error
}

func (r *StudentRepository) GetByUserID(ctx context.Context, userID string) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *StudentRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *StudentRepository) List(ctx context.Context, page, limit int) ([]studentDomain.Student, int64, error) {
	var (
		out   []studentDomain.Student
		total int64
	)
	q := r.db.WithContext(ctx).Model(&studentDomain.Student{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	res := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out)
	return out, total, res.Error
}
