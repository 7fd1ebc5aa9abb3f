package repayment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("repayment not found")
	ErrAmountExceedsBalance = errors.New("repayment amount exceeds outstanding balance")
	ErrMissingPaymentDetail = errors.New("required payment detail is missing")
	ErrInvalidLoanState     = errors.New("loan is not eligible for repayment")
	ErrProcessingFailed     = errors.New("repayment processing failed")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

type Method string

const (
	MethodMobileMoney  Method = "mobile_money"
	MethodBankTransfer Method = "bank_transfer"
	MethodCard         Method = "card"
	MethodWallet       Method = "wallet"
)

func ValidMethod(m Method) bool {
	switch m {
	case MethodMobileMoney, MethodBankTransfer, MethodCard, MethodWallet:
		return true
	}
	return false
}

type Repayment struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	RepaymentID string `gorm:"column:repayment_id;size:32;not null;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	// Human-readable reference, e.g. REP-1736123456789-9F3A21BC
	RepaymentReference string `gorm:"column:repayment_reference;size:40;not null;uniqueIndex:ux_repayments_reference" json:"repayment_reference"`
	// FK to loans.id (numeric)
	LoanID uint64 `gorm:"column:loan_id;not null;index:idx_repayments_loan" json:"-"`
	// Denormalized human-readable loan reference for display and audit.
	LoanReference string `gorm:"column:loan_reference;size:40;not null" json:"loan_reference"`

	Amount float64 `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Method Method  `gorm:"column:method;type:enum('mobile_money','bank_transfer','card','wallet');not null" json:"method"`
	Status Status  `gorm:"column:status;type:enum('pending','processing','completed','failed');default:'pending'" json:"status"`

	PhoneNumber string `gorm:"column:phone_number;size:32" json:"phone_number,omitempty"`
	BankAccount string `gorm:"column:bank_account;size:64" json:"bank_account,omitempty"`

	ExternalReference string     `gorm:"column:external_reference;size:64" json:"external_reference,omitempty"`
	FailureReason     string     `gorm:"column:failure_reason;type:text" json:"failure_reason,omitempty"`
	ProcessedAt       *time.Time `gorm:"column:processed_at" json:"processed_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Repayment) TableName() string { return "repayments" }

// RequiredDetail validates method-specific payment fields.
func RequiredDetail(m Method, phone, bankAccount string) error {
	switch m {
	case MethodMobileMoney:
		if phone == "" {
			return ErrMissingPaymentDetail
		}
	case MethodBankTransfer:
		if bankAccount == "" {
			return ErrMissingPaymentDetail
		}
	}
	return nil
}
