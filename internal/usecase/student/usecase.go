package student

import (
	"context"
	"errors"

	domain "campuslend-backend/internal/domain/student"
	"campuslend-backend/internal/domain/uow"
	"campuslend-backend/pkg/id"

	"gorm.io/gorm"
)

// Direction of an aggregate update on the ledger.
type Direction string

const (
	DirectionBorrow Direction = "borrow"
	DirectionRepay  Direction = "repay"
)

var ErrInvalidDirection = errors.New("direction must be borrow or repay")

type Usecase struct {
	repo    domain.Repository
	uow     uow.UnitOfWork
	scoring domain.ScorePolicy

	initialMaxLoan    float64
	initialTrustScore float64
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, scoring domain.ScorePolicy, initialMaxLoan, initialTrustScore float64) *Usecase {
	return &Usecase{
		repo:              repo,
		uow:               tx,
		scoring:           scoring,
		initialMaxLoan:    initialMaxLoan,
		initialTrustScore: initialTrustScore,
	}
}

// Register opens a ledger for a freshly created user account. The profile
// starts incomplete, so the student is ineligible until CompleteProfile.
func (u *Usecase) Register(ctx context.Context, userID string) (*StudentDTO, error) {
	s := &domain.Student{
		StudentID:     id.NewID32(),
		UserID:        userID,
		TrustScore:    u.initialTrustScore,
		MaxLoanAmount: u.initialMaxLoan,
	}
	s.RecalcEligibility(u.scoring)
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) GetByUserID(ctx context.Context, userID string) (*StudentDTO, error) {
	s, err := u.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) Score(ctx context.Context, userID string) (*ScoreDTO, error) {
	s, err := u.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toScoreDTO(s), nil
}

// CompleteProfile fills in the academic profile and recomputes
// eligibility; institution and program are the profile-completeness inputs
// of the eligibility function.
func (u *Usecase) CompleteProfile(ctx context.Context, userID string, in CompleteProfileInput) (*StudentDTO, error) {
	s, err := u.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.Institution = in.Institution
	s.Program = in.Program
	if in.StudentNumber != "" {
		s.StudentNumber = in.StudentNumber
	}
	s.YearOfStudy = in.YearOfStudy
	if in.ExpectedGraduationDate != nil {
		s.ExpectedGraduationDate = in.ExpectedGraduationDate
	}
	if in.NationalIDNumber != "" {
		s.NationalIDNumber = in.NationalIDNumber
	}
	s.RecalcEligibility(u.scoring)

	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*StudentDTO, error) {
	s, err := u.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Institution != "" {
		s.Institution = in.Institution
	}
	if in.Program != "" {
		s.Program = in.Program
	}
	if in.StudentNumber != "" {
		s.StudentNumber = in.StudentNumber
	}
	if in.YearOfStudy != "" {
		s.YearOfStudy = in.YearOfStudy
	}
	if in.ExpectedGraduationDate != nil {
		s.ExpectedGraduationDate = in.ExpectedGraduationDate
	}
	s.RecalcEligibility(u.scoring)

	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

// UpdateTrustScore applies one repayment-timeliness verdict to the ledger.
// The loan engine runs the same entity mutation inside its own
// transaction; this entry point serves callers outside a cascade.
func (u *Usecase) UpdateTrustScore(ctx context.Context, studentID string, onTime bool) (*StudentDTO, error) {
	var dto *StudentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Students.GetByStudentID(ctx, studentID)
		if err != nil {
			return wrapNotFound(err)
		}
		s.RecordRepaymentOutcome(onTime, u.scoring)
		if err := r.Students.Save(ctx, s); err != nil {
			return err
		}
		dto = toDTO(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// UpdateLoanStats bumps the borrow or repay aggregates.
func (u *Usecase) UpdateLoanStats(ctx context.Context, studentID string, amount float64, direction Direction) (*StudentDTO, error) {
	if direction != DirectionBorrow && direction != DirectionRepay {
		return nil, ErrInvalidDirection
	}
	var dto *StudentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Students.GetByStudentID(ctx, studentID)
		if err != nil {
			return wrapNotFound(err)
		}
		if direction == DirectionBorrow {
			s.RecordBorrow(amount)
		} else {
			s.RecordRepay(amount)
		}
		if err := r.Students.Save(ctx, s); err != nil {
			return err
		}
		dto = toDTO(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context, page, limit int) (*ListResult, error) {
	ss, total, err := u.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	out := make([]StudentDTO, 0, len(ss))
	for i := range ss {
		out = append(out, *toDTO(&ss[i]))
	}
	return &ListResult{Students: out, Total: total}, nil
}

func (u *Usecase) getByUserID(ctx context.Context, userID string) (*domain.Student, error) {
	s, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return s, nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
