package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("loan not found")
	ErrInvalidState     = errors.New("operation not valid for current loan status")
	ErrIneligible       = errors.New("student is not eligible for a loan")
	ErrLimitExceeded    = errors.New("requested amount exceeds the maximum loan amount")
	ErrActiveLoanExists = errors.New("student already has an active loan")
	ErrInvalidDueDate   = errors.New("due date outside the allowed window")
	ErrForbidden        = errors.New("loan does not belong to this student")
	ErrReasonRequired   = errors.New("rejection reason is required")
	ErrNotPastDue       = errors.New("loan is not past its grace period")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDisbursed Status = "disbursed"
	StatusActive    Status = "active"
	StatusRepaid    Status = "repaid"
	StatusOverdue   Status = "overdue"
	StatusDefaulted Status = "defaulted"
)

// NonTerminalStatuses are the statuses that count against the
// one-active-loan-per-student rule.
var NonTerminalStatuses = []Status{
	StatusPending, StatusApproved, StatusDisbursed, StatusActive, StatusOverdue,
}

type Purpose string

const (
	PurposeTuition       Purpose = "tuition"
	PurposeBooks         Purpose = "books"
	PurposeAccommodation Purpose = "accommodation"
	PurposeTransport     Purpose = "transport"
	PurposeFood          Purpose = "food"
	PurposeEmergency     Purpose = "emergency"
	PurposeOther         Purpose = "other"
)

func ValidPurpose(p Purpose) bool {
	switch p {
	case PurposeTuition, PurposeBooks, PurposeAccommodation, PurposeTransport,
		PurposeFood, PurposeEmergency, PurposeOther:
		return true
	}
	return false
}

type Loan struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID string `gorm:"column:loan_id;size:32;not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	// Human-readable reference, e.g. LN-1736123456789-9F3A21BC
	LoanReference string `gorm:"column:loan_reference;size:40;not null;uniqueIndex:ux_loans_reference" json:"loan_reference"`
	// FK to students.id (numeric)
	StudentID uint64 `gorm:"column:student_id;not null;index:idx_loans_student_status" json:"-"`

	Amount        float64 `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	FeePercentage float64 `gorm:"column:fee_percentage;type:decimal(5,2);not null" json:"fee_percentage"`
	FeeAmount     float64 `gorm:"column:fee_amount;type:decimal(12,2);not null" json:"fee_amount"`
	// TotalAmount = Amount + FeeAmount, fixed at creation.
	TotalAmount        float64 `gorm:"column:total_amount;type:decimal(12,2);not null" json:"total_amount"`
	AmountRepaid       float64 `gorm:"column:amount_repaid;type:decimal(12,2);default:0" json:"amount_repaid"`
	OutstandingBalance float64 `gorm:"column:outstanding_balance;type:decimal(12,2);default:0" json:"outstanding_balance"`

	Purpose            Purpose `gorm:"column:purpose;type:enum('tuition','books','accommodation','transport','food','emergency','other');default:'other'" json:"purpose"`
	PurposeDescription string  `gorm:"column:purpose_description;type:text" json:"purpose_description,omitempty"`

	Status Status `gorm:"column:status;type:enum('pending','approved','rejected','disbursed','active','repaid','overdue','defaulted');default:'pending';index:idx_loans_student_status" json:"status"`

	DueDate         time.Time  `gorm:"column:due_date;not null" json:"due_date"`
	DisbursedAt     *time.Time `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`
	RepaidAt        *time.Time `gorm:"column:repaid_at" json:"repaid_at,omitempty"`
	GracePeriodDays int        `gorm:"column:grace_period_days;default:7" json:"grace_period_days"`
	LateFee         float64    `gorm:"column:late_fee;type:decimal(12,2);default:0" json:"late_fee"`

	ApprovedBy      string     `gorm:"column:approved_by;size:32" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	RejectionReason string     `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`
	AdminNotes      string     `gorm:"column:admin_notes;type:text" json:"admin_notes,omitempty"`

	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Repayable reports whether the loan can accept payments.
func (l *Loan) Repayable() bool {
	switch l.Status {
	case StatusDisbursed, StatusActive, StatusOverdue:
		return true
	}
	return false
}

// FeePolicy carries the fee constants and the due-date window.
type FeePolicy struct {
	FeePercentage     float64
	LateFeePercentage float64
	GracePeriodDays   int
	MinDueDays        int
	MaxDueMonths      int
}

// Terms is the fee quote for a principal amount under a policy.
type Terms struct {
	Amount          float64 `json:"amount"`
	FeePercentage   float64 `json:"fee_percentage"`
	FeeAmount       float64 `json:"fee_amount"`
	TotalAmount     float64 `json:"total_amount"`
	LateFee         float64 `json:"late_fee"`
	GracePeriodDays int     `json:"grace_period_days"`
}

func QuoteTerms(amount float64, p FeePolicy) Terms {
	fee := amount * p.FeePercentage / 100
	return Terms{
		Amount:          amount,
		FeePercentage:   p.FeePercentage,
		FeeAmount:       fee,
		TotalAmount:     amount + fee,
		LateFee:         amount * p.LateFeePercentage / 100,
		GracePeriodDays: p.GracePeriodDays,
	}
}

// ValidDueDate checks the requested due date against [now+MinDueDays,
// now+MaxDueMonths].
func ValidDueDate(due, now time.Time, p FeePolicy) bool {
	minDue := now.AddDate(0, 0, p.MinDueDays)
	maxDue := now.AddDate(0, p.MaxDueMonths, 0)
	return !due.Before(minDue) && !due.After(maxDue)
}

// ApplyPayment adds amount to AmountRepaid and recomputes the outstanding
// balance floored at zero. Returns true when the loan became fully repaid.
func (l *Loan) ApplyPayment(amount float64, now time.Time) bool {
	l.AmountRepaid += amount
	l.OutstandingBalance = l.TotalAmount - l.AmountRepaid
	if l.OutstandingBalance > 0 {
		return false
	}
	l.OutstandingBalance = 0
	l.Status = StatusRepaid
	t := now
	l.RepaidAt = &t
	l.StatusUpdatedAt = now
	return true
}

// RepaidOnTime judges timeliness strictly against DueDate; the grace
// period only delays the overdue marking, it does not extend the on-time
// window for trust scoring.
func (l *Loan) RepaidOnTime() bool {
	return l.RepaidAt != nil && !l.RepaidAt.After(l.DueDate)
}

// PastGracePeriod reports whether now is beyond DueDate plus the stored
// grace period.
func (l *Loan) PastGracePeriod(now time.Time) bool {
	return now.After(l.DueDate.AddDate(0, 0, l.GracePeriodDays))
}
