package http

import (
	"net/http"

	domain "campuslend-backend/internal/domain/repayment"
	"campuslend-backend/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type makeRepaymentReq struct {
	LoanID      string  `json:"loan_id"      validate:"required,hex32"`
	Amount      float64 `json:"amount"       validate:"required,gt=0,dec2"`
	Method      string  `json:"method"       validate:"required,oneof=mobile_money bank_transfer card wallet"`
	PhoneNumber string  `json:"phone_number" validate:"omitempty,max=32"`
	BankAccount string  `json:"bank_account" validate:"omitempty,max=64"`
}

func (h *RepaymentHandler) MakeRepayment(c echo.Context) error {
	var req makeRepaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Make(c.Request().Context(), userID(c), repayment.MakeRepaymentInput{
		LoanID:      req.LoanID,
		Amount:      req.Amount,
		Method:      domain.Method(req.Method),
		PhoneNumber: req.PhoneNumber,
		BankAccount: req.BankAccount,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) ListMyRepayments(c echo.Context) error {
	dtos, err := h.uc.ListByStudent(c.Request().Context(), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *RepaymentHandler) ListLoanRepayments(c echo.Context) error {
	dtos, err := h.uc.ListByLoan(c.Request().Context(), c.Param("loan_id"), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// ---- admin ----

func (h *RepaymentHandler) GetRepayment(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("repayment_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RepaymentHandler) ListRepayments(c echo.Context) error {
	page, limit := pageParams(c)
	res, err := h.uc.List(c.Request().Context(), page, limit)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, paged(res.Repayments, res.Total, page, limit))
}
