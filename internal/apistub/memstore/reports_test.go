package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

func TestReports_CreateStartsPending(t *testing.T) {
	s := NewReports()

	report := s.Create("u1", domain.ReportInput{
		ContentID: "c1",
		Reason:    domain.ReasonSpam,
		Details:   "repeated promo posts",
	})

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, domain.ReportPending, report.Status)
	assert.Equal(t, "u1", report.ReporterID)
}

func TestReports_ModerationFlow(t *testing.T) {
	s := NewReports()
	report := s.Create("u1", domain.ReportInput{ContentID: "c1", Reason: domain.ReasonSpam})

	reviewed, err := s.UpdateStatus(report.ID, domain.ReportReviewed)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportReviewed, reviewed.Status)

	resolved, err := s.UpdateStatus(report.ID, domain.ReportResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportResolved, resolved.Status)

	_, err = s.UpdateStatus(report.ID, domain.ReportPending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReports_InvalidTransitionFromPending(t *testing.T) {
	s := NewReports()
	report := s.Create("u1", domain.ReportInput{ContentID: "c1", Reason: domain.ReasonSpam})

	_, err := s.UpdateStatus(report.ID, domain.ReportResolved)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	current := s.List()[0]
	assert.Equal(t, domain.ReportPending, current.Status, "failed transition must not change state")
}

func TestReports_UnknownID(t *testing.T) {
	s := NewReports()
	_, err := s.UpdateStatus("missing", domain.ReportReviewed)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}
