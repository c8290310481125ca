package domain

import "time"

// ReportStatus represents the moderation lifecycle state of a report.
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportReviewed  ReportStatus = "reviewed"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

// validTransitions defines the allowed moderation state machine transitions.
var validTransitions = map[ReportStatus][]ReportStatus{
	ReportPending:  {ReportReviewed, ReportDismissed},
	ReportReviewed: {ReportResolved, ReportDismissed},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid. Resolved and dismissed are terminal.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ReportReason enumerates why content can be reported.
type ReportReason string

const (
	ReasonSpam          ReportReason = "spam"
	ReasonAbuse         ReportReason = "abuse"
	ReasonCopyright     ReportReason = "copyright"
	ReasonInappropriate ReportReason = "inappropriate"
	ReasonOther         ReportReason = "other"
)

// Report is a user-filed complaint against a piece of content, moderated
// by administrators.
type Report struct {
	ID         string       `json:"_id"`
	ContentID  string       `json:"contentId"`
	ReporterID string       `json:"reporter"`
	Reason     ReportReason `json:"reason"`
	Details    string       `json:"details,omitempty"`
	Status     ReportStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// ReportInput is the payload for filing a report.
type ReportInput struct {
	ContentID string       `json:"contentId" validate:"required"`
	Reason    ReportReason `json:"reason" validate:"required,oneof=spam abuse copyright inappropriate other"`
	Details   string       `json:"details,omitempty"`
}
