package studentmock

import (
	"context"
	"errors"

	domain "campuslend-backend/internal/domain/student"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("studentmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones error out.
type Repo struct {
	CreateFn           func(ctx context.Context, s *domain.Student) error
	GetByStudentIDFn   func(ctx context.Context, studentID string) (*domain.Student, error)
	GetByUserIDFn      func(ctx context.Context, userID string) (*domain.Student, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Student, error)
	SaveFn             func(ctx context.Context, s *domain.Student) error
	ListFn             func(ctx context.Context, page, limit int) ([]domain.Student, int64, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Student) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *Repo) GetByStudentID(ctx context.Context, studentID string) (*domain.Student, error) {
	if m.GetByStudentIDFn != nil {
		return m.GetByStudentIDFn(ctx, studentID)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Student, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Student, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *Repo) Save(ctx context.Context, s *domain.Student) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
func (m *Repo) List(ctx context.Context, page, limit int) ([]domain.Student, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, limit)
	}
	return nil, 0, errUnimplemented
}
