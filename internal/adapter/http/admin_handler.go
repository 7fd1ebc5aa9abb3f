package http

import (
	"net/http"

	"campuslend-backend/internal/usecase/stats"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct{ uc *stats.Usecase }

func NewAdminHandler(uc *stats.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

func (h *AdminHandler) Dashboard(c echo.Context) error {
	dto, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AdminHandler) LoanStats(c echo.Context) error {
	s, err := h.uc.LoanStats(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *AdminHandler) TransactionStats(c echo.Context) error {
	from, to, err := dateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	s, err := h.uc.TransactionStats(c.Request().Context(), from, to)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
