package loan

import (
	"time"

	domain "campuslend-backend/internal/domain/loan"
)

type RequestLoanInput struct {
	Amount             float64
	Purpose            domain.Purpose
	PurposeDescription string
	DueDate            time.Time
}

type LoanDTO struct {
	LoanID             string         `json:"loan_id"`
	LoanReference      string         `json:"loan_reference"`
	Amount             float64        `json:"amount"`
	FeePercentage      float64        `json:"fee_percentage"`
	FeeAmount          float64        `json:"fee_amount"`
	TotalAmount        float64        `json:"total_amount"`
	AmountRepaid       float64        `json:"amount_repaid"`
	OutstandingBalance float64        `json:"outstanding_balance"`
	Purpose            domain.Purpose `json:"purpose"`
	PurposeDescription string         `json:"purpose_description,omitempty"`
	Status             domain.Status  `json:"status"`
	DueDate            time.Time      `json:"due_date"`
	DisbursedAt        *time.Time     `json:"disbursed_at,omitempty"`
	RepaidAt           *time.Time     `json:"repaid_at,omitempty"`
	GracePeriodDays    int            `json:"grace_period_days"`
	LateFee            float64        `json:"late_fee"`
	ApprovedBy         string         `json:"approved_by,omitempty"`
	ApprovedAt         *time.Time     `json:"approved_at,omitempty"`
	RejectionReason    string         `json:"rejection_reason,omitempty"`
	AdminNotes         string         `json:"admin_notes,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// TermsDTO is the quote returned before a student commits to a request.
type TermsDTO struct {
	domain.Terms
	MaxLoanAmount float64 `json:"max_loan_amount"`
	IsEligible    bool    `json:"is_eligible"`
}

type ListResult struct {
	Loans []LoanDTO
	Total int64
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:             l.LoanID,
		LoanReference:      l.LoanReference,
		Amount:             l.Amount,
		FeePercentage:      l.FeePercentage,
		FeeAmount:          l.FeeAmount,
		TotalAmount:        l.TotalAmount,
		AmountRepaid:       l.AmountRepaid,
		OutstandingBalance: l.OutstandingBalance,
		Purpose:            l.Purpose,
		PurposeDescription: l.PurposeDescription,
		Status:             l.Status,
		DueDate:            l.DueDate,
		DisbursedAt:        l.DisbursedAt,
		RepaidAt:           l.RepaidAt,
		GracePeriodDays:    l.GracePeriodDays,
		LateFee:            l.LateFee,
		ApprovedBy:         l.ApprovedBy,
		ApprovedAt:         l.ApprovedAt,
		RejectionReason:    l.RejectionReason,
		AdminNotes:         l.AdminNotes,
		CreatedAt:          l.CreatedAt,
	}
}

func toDTOs(ls []domain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out
}
