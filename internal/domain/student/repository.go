package student

import "context"

type Repository interface {
	Create(ctx context.Context, s *Student) error
	GetByStudentID(ctx context.Context, studentID string) (*Student, error)
	GetByUserID(ctx context.Context, userID string) (*Student, error)
	// Locking read used inside unit-of-work cascades.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Student, error)
	Save(ctx context.Context, s *Student) error
	List(ctx context.Context, page, limit int) ([]Student, int64, error)
}
