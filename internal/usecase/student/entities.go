package student

import (
	"time"

	domain "campuslend-backend/internal/domain/student"
)

type CompleteProfileInput struct {
	Institution            string
	Program                string
	StudentNumber          string
	YearOfStudy            string
	ExpectedGraduationDate *time.Time
	NationalIDNumber       string
}

type UpdateProfileInput struct {
	Institution            string
	Program                string
	StudentNumber          string
	YearOfStudy            string
	ExpectedGraduationDate *time.Time
}

type StudentDTO struct {
	StudentID              string     `json:"student_id"`
	UserID                 string     `json:"user_id"`
	Institution            string     `json:"institution"`
	Program                string     `json:"program"`
	StudentNumber          string     `json:"student_number,omitempty"`
	YearOfStudy            string     `json:"year_of_study,omitempty"`
	ExpectedGraduationDate *time.Time `json:"expected_graduation_date,omitempty"`
	TrustScore             float64    `json:"trust_score"`
	TotalBorrowed          float64    `json:"total_borrowed"`
	TotalRepaid            float64    `json:"total_repaid"`
	LoansCount             int        `json:"loans_count"`
	OnTimePayments         int        `json:"on_time_payments"`
	LatePayments           int        `json:"late_payments"`
	EligibleForLoan        bool       `json:"eligible_for_loan"`
	MaxLoanAmount          float64    `json:"max_loan_amount"`
	CreatedAt              time.Time  `json:"created_at"`
}

// ScoreDTO is the trust-score readout for the student dashboard.
type ScoreDTO struct {
	StudentID       string  `json:"student_id"`
	TrustScore      float64 `json:"trust_score"`
	TotalBorrowed   float64 `json:"total_borrowed"`
	TotalRepaid     float64 `json:"total_repaid"`
	LoansCount      int     `json:"loans_count"`
	OnTimePayments  int     `json:"on_time_payments"`
	LatePayments    int     `json:"late_payments"`
	EligibleForLoan bool    `json:"eligible_for_loan"`
	MaxLoanAmount   float64 `json:"max_loan_amount"`
}

type ListResult struct {
	Students []StudentDTO
	Total    int64
}

func toDTO(s *domain.Student) *StudentDTO {
	return &StudentDTO{
		StudentID:              s.StudentID,
		UserID:                 s.UserID,
		Institution:            s.Institution,
		Program:                s.Program,
		StudentNumber:          s.StudentNumber,
		YearOfStudy:            s.YearOfStudy,
		ExpectedGraduationDate: s.ExpectedGraduationDate,
		TrustScore:             s.TrustScore,
		TotalBorrowed:          s.TotalBorrowed,
		TotalRepaid:            s.TotalRepaid,
		LoansCount:             s.LoansCount,
		OnTimePayments:         s.OnTimePayments,
		LatePayments:           s.LatePayments,
		EligibleForLoan:        s.EligibleForLoan,
		MaxLoanAmount:          s.MaxLoanAmount,
		CreatedAt:              s.CreatedAt,
	}
}

func toScoreDTO(s *domain.Student) *ScoreDTO {
	return &ScoreDTO{
		StudentID:       s.StudentID,
		TrustScore:      s.TrustScore,
		TotalBorrowed:   s.TotalBorrowed,
		TotalRepaid:     s.TotalRepaid,
		LoansCount:      s.LoansCount,
		OnTimePayments:  s.OnTimePayments,
		LatePayments:    s.LatePayments,
		EligibleForLoan: s.EligibleForLoan,
		MaxLoanAmount:   s.MaxLoanAmount,
	}
}
