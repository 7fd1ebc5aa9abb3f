package http

import (
	"net/http"
	"strconv"
	"time"

	domain "campuslend-backend/internal/domain/loan"
	"campuslend-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type requestLoanReq struct {
	Amount             float64 `json:"amount"               validate:"required,gt=0,dec2"`
	Purpose            string  `json:"purpose"              validate:"required,oneof=tuition books accommodation transport food emergency other"`
	PurposeDescription string  `json:"purpose_description"`
	// Canonical date `YYYY-MM-DD`
	DueDate string `json:"due_date"             validate:"required,datetime=2006-01-02"`
}

func (h *LoanHandler) RequestLoan(c echo.Context) error {
	var req requestLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	due, _ := time.Parse("2006-01-02", req.DueDate)
	dto, err := h.uc.Request(c.Request().Context(), userID(c), loan.RequestLoanInput{
		Amount:             req.Amount,
		Purpose:            domain.Purpose(req.Purpose),
		PurposeDescription: req.PurposeDescription,
		DueDate:            due.UTC(),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetTerms(c echo.Context) error {
	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil || amount <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be a positive number"})
	}
	dto, err := h.uc.Terms(c.Request().Context(), userID(c), amount)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListMyLoans(c echo.Context) error {
	dtos, err := h.uc.ListByStudent(c.Request().Context(), userID(c), domain.Status(c.QueryParam("status")))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// ---- admin ----

func (h *LoanHandler) GetLoanAdmin(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"), "")
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	page, limit := pageParams(c)
	res, err := h.uc.List(c.Request().Context(), page, limit, domain.Status(c.QueryParam("status")))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, paged(res.Loans, res.Total, page, limit))
}

type approveLoanReq struct {
	AdminNotes string `json:"admin_notes"`
}

func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	var req approveLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("loan_id"), userID(c), req.AdminNotes)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectLoanReq struct {
	RejectionReason string `json:"rejection_reason" validate:"required"`
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	var req rejectLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("loan_id"), userID(c), req.RejectionReason)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DisburseLoan(c echo.Context) error {
	dto, err := h.uc.Disburse(c.Request().Context(), c.Param("loan_id"), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) MarkOverdue(c echo.Context) error {
	dto, err := h.uc.MarkOverdue(c.Request().Context(), c.Param("loan_id"), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) MarkDefaulted(c echo.Context) error {
	dto, err := h.uc.MarkDefaulted(c.Request().Context(), c.Param("loan_id"), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) OverdueCandidates(c echo.Context) error {
	dtos, err := h.uc.OverdueCandidates(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
