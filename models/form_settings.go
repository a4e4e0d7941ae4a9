package models

import "time"

// Selection modes for the plan-period sub-form. Switching modes keeps
// the other mode's fields so the user can flip back without losing input.
const (
	SelectionModeDates    = "dates"
	SelectionModeDuration = "duration"
)

// PlanConfiguration is the draft state for one generation request.
// In dates mode StartDate/EndDate apply; in duration mode DurationDays
// counts from DurationStartDate. Dates use the YYYY-MM-DD layout.
type PlanConfiguration struct {
	PlanName          string `firestore:"planName,omitempty" json:"plan_name,omitempty"`
	ResearchSummary   string `firestore:"researchSummary" json:"research_summary"`
	SelectionMode     string `firestore:"selectionMode" json:"selection_mode"`
	StartDate         string `firestore:"startDate,omitempty" json:"start_date,omitempty"`
	EndDate           string `firestore:"endDate,omitempty" json:"end_date,omitempty"`
	DurationDays      int    `firestore:"durationDays,omitempty" json:"duration_days,omitempty"`
	DurationStartDate string `firestore:"durationStartDate,omitempty" json:"duration_start_date,omitempty"`
}

// SavedFormSettings is a named, timestamped snapshot of a
// PlanConfiguration. The same shape backs both the history entries in
// users/{uid}/formSettingsHistory and the formSettings/default document;
// on the default document SnapshotID points at the history entry it was
// last saved from.
type SavedFormSettings struct {
	ID         string            `firestore:"-" json:"id"`
	Name       string            `firestore:"name,omitempty" json:"name,omitempty"`
	Config     PlanConfiguration `firestore:"config" json:"config"`
	SnapshotID string            `firestore:"snapshotId,omitempty" json:"snapshot_id,omitempty"`
	CreatedAt  time.Time         `firestore:"createdAt" json:"created_at"`
}
