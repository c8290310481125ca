package rest

import (
	"context"
	"net/http"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// FileReport reports a piece of content for moderation.
func (c *Client) FileReport(ctx context.Context, in domain.ReportInput) (*domain.Report, error) {
	var report domain.Report
	if _, err := c.do(ctx, http.MethodPost, "/reports", nil, in, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Reports lists all reports. Admin only; non-admin callers get a 403
// APIError from the server.
func (c *Client) Reports(ctx context.Context) ([]domain.Report, error) {
	var reports []domain.Report
	if _, err := c.do(ctx, http.MethodGet, "/reports", nil, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

type reportStatusRequest struct {
	Status domain.ReportStatus `json:"status"`
}

// UpdateReportStatus moves a report through the moderation state machine.
// Admin only.
func (c *Client) UpdateReportStatus(ctx context.Context, id string, status domain.ReportStatus) (*domain.Report, error) {
	var report domain.Report
	if _, err := c.do(ctx, http.MethodPut, "/reports/"+id, nil, reportStatusRequest{Status: status}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
