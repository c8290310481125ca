package memstore

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/creatorhub/platform-client/internal/core/domain"
)

// Reports stores moderation reports keyed by ID.
type Reports struct {
	mu   sync.RWMutex
	byID map[string]*domain.Report
}

func NewReports() *Reports {
	return &Reports{byID: make(map[string]*domain.Report)}
}

// Create files a new report in the pending state.
func (s *Reports) Create(reporterID string, in domain.ReportInput) *domain.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	report := &domain.Report{
		ID:         uuid.NewString(),
		ContentID:  in.ContentID,
		ReporterID: reporterID,
		Reason:     in.Reason,
		Details:    in.Details,
		Status:     domain.ReportPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.byID[report.ID] = report
	clone := *report
	return &clone
}

// List returns all reports, newest first.
func (s *Reports) List() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Report, 0, len(s.byID))
	for _, r := range s.byID {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// UpdateStatus moves a report through the moderation state machine,
// rejecting transitions the machine does not allow.
func (s *Reports) UpdateStatus(id string, next domain.ReportStatus) (*domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	if !report.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, report.Status, next)
	}
	report.Status = next
	report.UpdatedAt = time.Now().UTC()
	clone := *report
	return &clone, nil
}
