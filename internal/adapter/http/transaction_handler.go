package http

import (
	"errors"
	"net/http"
	"time"

	txDomain "campuslend-backend/internal/domain/transaction"
	"campuslend-backend/internal/usecase/transaction"

	"github.com/labstack/echo/v4"
)

type TransactionHandler struct{ uc *transaction.Usecase }

func NewTransactionHandler(uc *transaction.Usecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func (h *TransactionHandler) ListMyTransactions(c echo.Context) error {
	ts, err := h.uc.ListByUser(c.Request().Context(), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}

// ---- admin ----

func (h *TransactionHandler) GetByReference(c echo.Context) error {
	t, err := h.uc.GetByReference(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TransactionHandler) ListLoanTransactions(c echo.Context) error {
	ts, err := h.uc.ListByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	page, limit := pageParams(c)
	f := txDomain.ListFilter{Type: txDomain.Type(c.QueryParam("type"))}
	if f.Type != "" && !txDomain.ValidType(f.Type) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid transaction type"})
	}
	var err error
	if f.From, f.To, err = dateRange(c); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	res, err := h.uc.List(c.Request().Context(), page, limit, f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, paged(res.Transactions, res.Total, page, limit))
}

var errInvalidDate = errors.New("dates must match format 2006-01-02")

func dateRange(c echo.Context) (from, to time.Time, err error) {
	parse := func(name string) (time.Time, error) {
		v := c.QueryParam(name)
		if v == "" {
			return time.Time{}, nil
		}
		t, perr := time.Parse("2006-01-02", v)
		if perr != nil {
			return time.Time{}, errInvalidDate
		}
		return t.UTC(), nil
	}
	if from, err = parse("start_date"); err != nil {
		return from, to, err
	}
	if to, err = parse("end_date"); err != nil {
		return from, to, err
	}
	if !to.IsZero() {
		// inclusive end of day
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
