package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campuslend-backend/internal/domain/loan"
	"campuslend-backend/internal/domain/repayment"
	"campuslend-backend/pkg/id"
)

var (
	ErrNotFound = errors.New("transaction not found")
)

type Type string

const (
	TypeDisbursement Type = "loan_disbursement"
	TypeRepayment    Type = "loan_repayment"
	TypeFee          Type = "fee_collection"
	TypeRefund       Type = "refund"
	TypeLateFee      Type = "late_fee"
)

func ValidType(t Type) bool {
	switch t {
	case TypeDisbursement, TypeRepayment, TypeFee, TypeRefund, TypeLateFee:
		return true
	}
	return false
}

type Status string

// Status is fixed to completed at creation; rows are never updated.
const (
	StatusCompleted Status = "completed"
)

// Transaction is an append-only audit row for one money-movement event.
type Transaction struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Human-readable reference, e.g. TXN-1736123456789-9F3A21BC
	Reference string `gorm:"column:reference;size:40;not null;uniqueIndex:ux_transactions_reference" json:"reference"`

	Type   Type    `gorm:"column:type;type:enum('loan_disbursement','loan_repayment','fee_collection','refund','late_fee');not null;index:idx_transactions_type" json:"type"`
	Amount float64 `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Status Status  `gorm:"column:status;type:enum('completed');default:'completed'" json:"status"`

	UserID      string `gorm:"column:user_id;size:32;index:idx_transactions_user" json:"user_id,omitempty"`
	LoanID      uint64 `gorm:"column:loan_id;index:idx_transactions_loan" json:"-"`
	RepaymentID uint64 `gorm:"column:repayment_id" json:"-"`

	ExternalReference string `gorm:"column:external_reference;size:64" json:"external_reference,omitempty"`
	Description       string `gorm:"column:description;type:text" json:"description,omitempty"`
	// JSON-encoded structured metadata for reporting.
	Metadata string `gorm:"column:metadata;type:json" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_transactions_created" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }

func encodeMetadata(m map[string]any) string {
	b, _ := json.Marshal(m)
	return string(b)
}

// NewDisbursement records the principal leaving the platform for a loan.
func NewDisbursement(l *loan.Loan, userID string) *Transaction {
	return &Transaction{
		Reference:   id.NewReference("TXN"),
		Type:        TypeDisbursement,
		Amount:      l.Amount,
		Status:      StatusCompleted,
		UserID:      userID,
		LoanID:      l.ID,
		Description: fmt.Sprintf("Loan disbursement for %s", l.LoanReference),
		Metadata: encodeMetadata(map[string]any{
			"loan_reference": l.LoanReference,
			"purpose":        l.Purpose,
		}),
	}
}

// NewRepayment records a completed repayment against a loan.
func NewRepayment(r *repayment.Repayment, l *loan.Loan, userID string) *Transaction {
	return &Transaction{
		Reference:         id.NewReference("TXN"),
		Type:              TypeRepayment,
		Amount:            r.Amount,
		Status:            StatusCompleted,
		UserID:            userID,
		LoanID:            l.ID,
		RepaymentID:       r.ID,
		ExternalReference: r.ExternalReference,
		Description:       fmt.Sprintf("Loan repayment for %s", r.RepaymentReference),
		Metadata: encodeMetadata(map[string]any{
			"repayment_reference": r.RepaymentReference,
			"payment_method":      r.Method,
		}),
	}
}

// NewFee records the platform fee collected with a disbursement.
func NewFee(l *loan.Loan, userID string) *Transaction {
	return &Transaction{
		Reference:   id.NewReference("TXN"),
		Type:        TypeFee,
		Amount:      l.FeeAmount,
		Status:      StatusCompleted,
		UserID:      userID,
		LoanID:      l.ID,
		Description: fmt.Sprintf("Platform fee for %s", l.LoanReference),
		Metadata: encodeMetadata(map[string]any{
			"loan_reference": l.LoanReference,
			"fee_percentage": l.FeePercentage,
		}),
	}
}

// NewLateFee records the late fee assessed when a loan goes overdue.
func NewLateFee(l *loan.Loan, userID string) *Transaction {
	return &Transaction{
		Reference:   id.NewReference("TXN"),
		Type:        TypeLateFee,
		Amount:      l.LateFee,
		Status:      StatusCompleted,
		UserID:      userID,
		LoanID:      l.ID,
		Description: fmt.Sprintf("Late fee for %s", l.LoanReference),
		Metadata: encodeMetadata(map[string]any{
			"loan_reference":    l.LoanReference,
			"grace_period_days": l.GracePeriodDays,
		}),
	}
}
