package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	loanDomain "campuslend-backend/internal/domain/loan"
	repaymentDomain "campuslend-backend/internal/domain/repayment"
	studentDomain "campuslend-backend/internal/domain/student"
	txDomain "campuslend-backend/internal/domain/transaction"

	"github.com/labstack/echo/v4"
)

// ---- pagination ----

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type PagedResponse struct {
	Data any      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func paged(data any, total int64, page, limit int) PagedResponse {
	return PagedResponse{
		Data: data,
		Meta: PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}
}

func pageParams(c echo.Context) (page, limit int) {
	page, limit = 1, 10
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	return page, limit
}

// ---- auth context ----

func userID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok {
		return v
	}
	return ""
}

// ---- domain error → HTTP status mapping ----

func writeDomainError(c echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, repaymentDomain.ErrNotFound),
		errors.Is(err, studentDomain.ErrNotFound),
		errors.Is(err, txDomain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, loanDomain.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, loanDomain.ErrInvalidState),
		errors.Is(err, loanDomain.ErrNotPastDue),
		errors.Is(err, repaymentDomain.ErrInvalidLoanState):
		code = http.StatusConflict
	case errors.Is(err, loanDomain.ErrIneligible),
		errors.Is(err, loanDomain.ErrLimitExceeded),
		errors.Is(err, loanDomain.ErrActiveLoanExists),
		errors.Is(err, loanDomain.ErrInvalidDueDate),
		errors.Is(err, loanDomain.ErrReasonRequired),
		errors.Is(err, repaymentDomain.ErrAmountExceedsBalance),
		errors.Is(err, repaymentDomain.ErrMissingPaymentDetail):
		code = http.StatusBadRequest
	case errors.Is(err, repaymentDomain.ErrProcessingFailed):
		code = http.StatusBadGateway
	default:
		code = http.StatusInternalServerError
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}
