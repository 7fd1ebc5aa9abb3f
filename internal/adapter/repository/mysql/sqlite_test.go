package mysql

import (
	"testing"
	"time"

	loanDomain "campuslend-backend/internal/domain/loan"
	studentDomain "campuslend-backend/internal/domain/student"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type studentSQLite struct {
	ID                     uint64         `gorm:"primaryKey;column:id"`
	StudentID              string         `gorm:"size:32;column:student_id"`
	UserID                 string         `gorm:"size:32;column:user_id"`
	Institution            string         `gorm:"column:institution"`
	Program                string         `gorm:"column:program"`
	StudentNumber          string         `gorm:"column:student_number"`
	YearOfStudy            string         `gorm:"column:year_of_study"`
	ExpectedGraduationDate *time.Time     `gorm:"column:expected_graduation_date"`
	NationalIDNumber       string         `gorm:"column:national_id_number"`
	TrustScore             float64        `gorm:"column:trust_score"`
	TotalBorrowed          float64        `gorm:"column:total_borrowed"`
	TotalRepaid            float64        `gorm:"column:total_repaid"`
	LoansCount             int            `gorm:"column:loans_count"`
	OnTimePayments         int            `gorm:"column:on_time_payments"`
	LatePayments           int            `gorm:"column:late_payments"`
	EligibleForLoan        bool           `gorm:"column:eligible_for_loan"`
	MaxLoanAmount          float64        `gorm:"column:max_loan_amount"`
	CreatedAt              time.Time      `gorm:"column:created_at"`
	UpdatedAt              time.Time      `gorm:"column:updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (studentSQLite) TableName() string { return "students" }

type loanSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	LoanID             string         `gorm:"size:32;column:loan_id"`
	LoanReference      string         `gorm:"size:40;column:loan_reference"`
	StudentID          uint64         `gorm:"column:student_id"`
	Amount             float64        `gorm:"column:amount"`
	FeePercentage      float64        `gorm:"column:fee_percentage"`
	FeeAmount          float64        `gorm:"column:fee_amount"`
	TotalAmount        float64        `gorm:"column:total_amount"`
	AmountRepaid       float64        `gorm:"column:amount_repaid"`
	OutstandingBalance float64        `gorm:"column:outstanding_balance"`
	Purpose            string         `gorm:"type:text;column:purpose"` // no enum
	PurposeDescription string         `gorm:"column:purpose_description"`
	Status             string         `gorm:"type:text;column:status"` // no enum
	DueDate            time.Time      `gorm:"column:due_date"`
	DisbursedAt        *time.Time     `gorm:"column:disbursed_at"`
	RepaidAt           *time.Time     `gorm:"column:repaid_at"`
	GracePeriodDays    int            `gorm:"column:grace_period_days"`
	LateFee            float64        `gorm:"column:late_fee"`
	ApprovedBy         string         `gorm:"column:approved_by"`
	ApprovedAt         *time.Time     `gorm:"column:approved_at"`
	RejectionReason    string         `gorm:"column:rejection_reason"`
	AdminNotes         string         `gorm:"column:admin_notes"`
	StatusUpdatedAt    time.Time      `gorm:"column:status_updated_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type repaymentSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	RepaymentID        string         `gorm:"size:32;column:repayment_id"`
	RepaymentReference string         `gorm:"size:40;column:repayment_reference"`
	LoanID             uint64         `gorm:"column:loan_id"`
	LoanReference      string         `gorm:"size:40;column:loan_reference"`
	Amount             float64        `gorm:"column:amount"`
	Method             string         `gorm:"type:text;column:method"` // no enum
	Status             string         `gorm:"type:text;column:status"` // no enum
	PhoneNumber        string         `gorm:"column:phone_number"`
	BankAccount        string         `gorm:"column:bank_account"`
	ExternalReference  string         `gorm:"column:external_reference"`
	FailureReason      string         `gorm:"column:failure_reason"`
	ProcessedAt        *time.Time     `gorm:"column:processed_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (repaymentSQLite) TableName() string { return "repayments" }

type transactionSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	Reference         string    `gorm:"size:40;column:reference"`
	Type              string    `gorm:"type:text;column:type"`   // no enum
	Status            string    `gorm:"type:text;column:status"` // no enum
	Amount            float64   `gorm:"column:amount"`
	UserID            string    `gorm:"size:32;column:user_id"`
	LoanID            uint64    `gorm:"column:loan_id"`
	RepaymentID       uint64    `gorm:"column:repayment_id"`
	ExternalReference string    `gorm:"column:external_reference"`
	Description       string    `gorm:"column:description"`
	Metadata          string    `gorm:"type:text;column:metadata"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (transactionSQLite) TableName() string { return "transactions" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&studentSQLite{}, &loanSQLite{}, &repaymentSQLite{}, &transactionSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeStudent(studentID, userID string) *studentDomain.Student {
	return &studentDomain.Student{
		StudentID:     studentID,
		UserID:        userID,
		Institution:   "UR",
		Program:       "CS",
		TrustScore:    50,
		MaxLoanAmount: 50_000,
	}
}

func makeActiveLoan(loanID string, studentID uint64) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:             loanID,
		LoanReference:      "LN-1-" + loanID[:8],
		StudentID:          studentID,
		Amount:             50_000,
		FeePercentage:      5,
		FeeAmount:          2_500,
		TotalAmount:        52_500,
		OutstandingBalance: 52_500,
		Purpose:            loanDomain.PurposeTuition,
		Status:             loanDomain.StatusActive,
		DueDate:            time.Now().UTC().AddDate(0, 1, 0),
		GracePeriodDays:    7,
		LateFee:            1_000,
		StatusUpdatedAt:    time.Now().UTC(),
	}
}
