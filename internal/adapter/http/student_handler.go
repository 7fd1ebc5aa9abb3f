package http

import (
	"net/http"
	"time"

	"campuslend-backend/internal/usecase/student"

	"github.com/labstack/echo/v4"
)

type StudentHandler struct{ uc *student.Usecase }

func NewStudentHandler(uc *student.Usecase) *StudentHandler { return &StudentHandler{uc: uc} }

// RegisterLedger opens the ledger row for the authenticated user. The auth
// service calls this right after account creation.
func (h *StudentHandler) RegisterLedger(c echo.Context) error {
	dto, err := h.uc.Register(c.Request().Context(), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *StudentHandler) GetMe(c echo.Context) error {
	dto, err := h.uc.GetByUserID(c.Request().Context(), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StudentHandler) GetScore(c echo.Context) error {
	dto, err := h.uc.Score(c.Request().Context(), userID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type completeProfileReq struct {
	Institution            string `json:"institution"              validate:"required,max=200"`
	Program                string `json:"program"                  validate:"required,max=200"`
	StudentNumber          string `json:"student_number"           validate:"max=64"`
	YearOfStudy            string `json:"year_of_study"            validate:"required,oneof=1st_year 2nd_year 3rd_year 4th_year 5th_year postgraduate"`
	ExpectedGraduationDate string `json:"expected_graduation_date" validate:"omitempty,datetime=2006-01-02"`
	NationalIDNumber       string `json:"national_id_number"       validate:"max=64"`
}

func (h *StudentHandler) CompleteProfile(c echo.Context) error {
	var req completeProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := student.CompleteProfileInput{
		Institution:      req.Institution,
		Program:          req.Program,
		StudentNumber:    req.StudentNumber,
		YearOfStudy:      req.YearOfStudy,
		NationalIDNumber: req.NationalIDNumber,
	}
	if req.ExpectedGraduationDate != "" {
		d, _ := time.Parse("2006-01-02", req.ExpectedGraduationDate)
		in.ExpectedGraduationDate = &d
	}
	dto, err := h.uc.CompleteProfile(c.Request().Context(), userID(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateProfileReq struct {
	Institution            string `json:"institution"              validate:"omitempty,max=200"`
	Program                string `json:"program"                  validate:"omitempty,max=200"`
	StudentNumber          string `json:"student_number"           validate:"max=64"`
	YearOfStudy            string `json:"year_of_study"            validate:"omitempty,oneof=1st_year 2nd_year 3rd_year 4th_year 5th_year postgraduate"`
	ExpectedGraduationDate string `json:"expected_graduation_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *StudentHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := student.UpdateProfileInput{
		Institution:   req.Institution,
		Program:       req.Program,
		StudentNumber: req.StudentNumber,
		YearOfStudy:   req.YearOfStudy,
	}
	if req.ExpectedGraduationDate != "" {
		d, _ := time.Parse("2006-01-02", req.ExpectedGraduationDate)
		in.ExpectedGraduationDate = &d
	}
	dto, err := h.uc.UpdateProfile(c.Request().Context(), userID(c), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ---- admin ----

func (h *StudentHandler) ListStudents(c echo.Context) error {
	page, limit := pageParams(c)
	res, err := h.uc.List(c.Request().Context(), page, limit)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, paged(res.Students, res.Total, page, limit))
}
