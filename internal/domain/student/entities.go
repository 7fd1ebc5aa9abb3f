package student

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("student not found")
)

type Student struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	StudentID string `gorm:"column:student_id;size:32;not null;uniqueIndex:ux_students_student_id" json:"student_id"`
	// Owning user account (issued by the external auth service)
	UserID string `gorm:"column:user_id;size:32;not null;uniqueIndex:ux_students_user_id" json:"user_id"`

	Institution            string     `gorm:"column:institution;size:200" json:"institution"`
	Program                string     `gorm:"column:program;size:200" json:"program"`
	StudentNumber          string     `gorm:"column:student_number;size:64" json:"student_number"`
	YearOfStudy            string     `gorm:"column:year_of_study;size:32" json:"year_of_study"`
	ExpectedGraduationDate *time.Time `gorm:"column:expected_graduation_date" json:"expected_graduation_date,omitempty"`
	NationalIDNumber       string     `gorm:"column:national_id_number;size:64" json:"national_id_number,omitempty"`

	TrustScore     float64 `gorm:"column:trust_score;type:decimal(5,2);default:0" json:"trust_score"`
	TotalBorrowed  float64 `gorm:"column:total_borrowed;type:decimal(12,2);default:0" json:"total_borrowed"`
	TotalRepaid    float64 `gorm:"column:total_repaid;type:decimal(12,2);default:0" json:"total_repaid"`
	LoansCount     int     `gorm:"column:loans_count;default:0" json:"loans_count"`
	OnTimePayments int     `gorm:"column:on_time_payments;default:0" json:"on_time_payments"`
	LatePayments   int     `gorm:"column:late_payments;default:0" json:"late_payments"`

	// Cached verdict of Eligible(); recomputed on every mutation that
	// touches its inputs, never set directly.
	EligibleForLoan bool    `gorm:"column:eligible_for_loan;default:false" json:"eligible_for_loan"`
	MaxLoanAmount   float64 `gorm:"column:max_loan_amount;type:decimal(12,2);default:50000" json:"max_loan_amount"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Student) TableName() string { return "students" }

// ScorePolicy carries the trust-score and borrowing-limit constants.
// Built from config so tests can exercise the arithmetic in isolation.
type ScorePolicy struct {
	Increment        float64
	Penalty          float64
	MinScore         float64
	MaxScore         float64
	GrowthFactor     float64
	ShrinkFactor     float64
	MaxLoanCeiling   float64
	MinLoanFloor     float64
	MinEligibleScore float64
	MaxLateRatio     float64
}

// RecordRepaymentOutcome applies the feedback loop for one fully repaid
// loan: counters, trust score within [MinScore, MaxScore], borrowing limit
// within [MinLoanFloor, MaxLoanCeiling], then eligibility recompute.
func (s *Student) RecordRepaymentOutcome(onTime bool, p ScorePolicy) {
	if onTime {
		s.OnTimePayments++
		s.TrustScore = min(p.MaxScore, s.TrustScore+p.Increment)
		s.MaxLoanAmount = min(p.MaxLoanCeiling, s.MaxLoanAmount*p.GrowthFactor)
	} else {
		s.LatePayments++
		s.TrustScore = max(p.MinScore, s.TrustScore-p.Penalty)
		s.MaxLoanAmount = max(p.MinLoanFloor, s.MaxLoanAmount*p.ShrinkFactor)
	}
	s.RecalcEligibility(p)
}

// RecordBorrow bumps the borrow aggregates at disbursement time.
func (s *Student) RecordBorrow(amount float64) {
	s.TotalBorrowed += amount
	s.LoansCount++
}

// RecordRepay bumps the repaid aggregate for every completed repayment,
// partial or full.
func (s *Student) RecordRepay(amount float64) {
	s.TotalRepaid += amount
}

func (s *Student) RecalcEligibility(p ScorePolicy) {
	s.EligibleForLoan = Eligible(s.Institution, s.Program, s.TrustScore, s.OnTimePayments, s.LatePayments, p)
}

// Eligible is the canonical eligibility function: profile complete, trust
// score at or above the threshold, and late-payment ratio at or below the
// cap once at least one payment exists.
func Eligible(institution, program string, trustScore float64, onTime, late int, p ScorePolicy) bool {
	if institution == "" || program == "" {
		return false
	}
	if trustScore < p.MinEligibleScore {
		return false
	}
	if total := onTime + late; total > 0 {
		if float64(late)/float64(total) > p.MaxLateRatio {
			return false
		}
	}
	return true
}
