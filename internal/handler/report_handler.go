package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"surveywallet/internal/auth"
	"surveywallet/internal/errors"
	"surveywallet/internal/service"
)

// ReportHandler handles content report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReportRequest represents a report creation request.
type CreateReportRequest struct {
	SurveyID string `json:"survey_id" validate:"required,uuid"`
	Reason   string `json:"reason" validate:"required"`
}

// CreateReport godoc
// @Summary Report a survey
// @Tags reports
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CreateReportRequest true "Report payload"
// @Success 201 {object} model.Report
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}

	var req CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	surveyID, err := uuid.Parse(req.SurveyID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid survey_id",
			Code:  "INVALID_UUID",
		})
	}

	report, err := h.reportService.Create(c.Request().Context(), surveyID, claims.Email, req.Reason)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, report)
}

// ListReports godoc
// @Summary List reports (admin)
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Success 200 {array} model.Report
// @Failure 403 {object} errors.ErrorResponse
// @Router /reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reportService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reports)
}

// DeleteReport godoc
// @Summary Delete a handled report (admin)
// @Tags reports
// @Produce json
// @Security SessionCookie
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid report id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.reportService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}
