package repayment

import (
	"time"

	domain "campuslend-backend/internal/domain/repayment"
)

type MakeRepaymentInput struct {
	LoanID      string
	Amount      float64
	Method      domain.Method
	PhoneNumber string
	BankAccount string
}

type RepaymentDTO struct {
	RepaymentID        string        `json:"repayment_id"`
	RepaymentReference string        `json:"repayment_reference"`
	LoanReference      string        `json:"loan_reference"`
	Amount             float64       `json:"amount"`
	Method             domain.Method `json:"method"`
	Status             domain.Status `json:"status"`
	ExternalReference  string        `json:"external_reference,omitempty"`
	FailureReason      string        `json:"failure_reason,omitempty"`
	ProcessedAt        *time.Time    `json:"processed_at,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

type ListResult struct {
	Repayments []RepaymentDTO
	Total      int64
}

func toDTO(r *domain.Repayment) *RepaymentDTO {
	return &RepaymentDTO{
		RepaymentID:        r.RepaymentID,
		RepaymentReference: r.RepaymentReference,
		LoanReference:      r.LoanReference,
		Amount:             r.Amount,
		Method:             r.Method,
		Status:             r.Status,
		ExternalReference:  r.ExternalReference,
		FailureReason:      r.FailureReason,
		ProcessedAt:        r.ProcessedAt,
		CreatedAt:          r.CreatedAt,
	}
}

func toDTOs(rs []domain.Repayment) []RepaymentDTO {
	out := make([]RepaymentDTO, 0, len(rs))
	for i := range rs {
		out = append(out, *toDTO(&rs[i]))
	}
	return out
}
