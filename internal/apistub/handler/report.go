package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/platform-client/internal/apistub/memstore"
	"github.com/creatorhub/platform-client/internal/core/domain"
)

type ReportHandler struct {
	reports *memstore.Reports
}

func NewReportHandler(reports *memstore.Reports) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Create files a report against a piece of content.
func (h *ReportHandler) Create(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var in domain.ReportInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return ok(c, http.StatusCreated, h.reports.Create(uid, in))
}

// List returns all reports for moderation. Admin only (enforced by RBAC).
func (h *ReportHandler) List(c echo.Context) error {
	return ok(c, http.StatusOK, h.reports.List())
}

type reportStatusRequest struct {
	Status domain.ReportStatus `json:"status" validate:"required,oneof=pending reviewed resolved dismissed"`
}

// UpdateStatus moves a report through the moderation state machine.
func (h *ReportHandler) UpdateStatus(c echo.Context) error {
	var req reportStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.reports.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, report)
}
