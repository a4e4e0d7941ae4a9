package models

import "time"

// Reminder frequencies.
const (
	FrequencyDaily        = "daily"
	FrequencyEveryXDays   = "everyXdays"
	FrequencySpecificDays = "specificDays"
	FrequencyAsNeeded     = "asNeeded"
)

// Reminder is optional scheduling metadata for a medication.
// IntervalDays is only meaningful with the everyXdays frequency and
// SpecificDays only with specificDays; writes normalize the rest away.
type Reminder struct {
	Frequency    string   `firestore:"frequency" json:"frequency"`
	Times        []string `firestore:"times,omitempty" json:"times,omitempty"` // "HH:MM"
	IntervalDays int      `firestore:"intervalDays,omitempty" json:"interval_days,omitempty"`
	SpecificDays []string `firestore:"specificDays,omitempty" json:"specific_days,omitempty"`
}

// Medication is a users/{uid}/medications document.
type Medication struct {
	ID                string    `firestore:"-" json:"id"`
	Name              string    `firestore:"name" json:"name"`
	Description       string    `firestore:"description,omitempty" json:"description,omitempty"`
	Strength          string    `firestore:"strength,omitempty" json:"strength,omitempty"`
	Form              string    `firestore:"form,omitempty" json:"form,omitempty"`
	Shape             string    `firestore:"shape,omitempty" json:"shape,omitempty"`
	Color             string    `firestore:"color,omitempty" json:"color,omitempty"`
	Stock             int       `firestore:"stock" json:"stock"`
	LowStockThreshold *int      `firestore:"lowStockThreshold,omitempty" json:"low_stock_threshold,omitempty"`
	Instructions      string    `firestore:"instructions,omitempty" json:"instructions,omitempty"`
	Reminder          *Reminder `firestore:"reminder,omitempty" json:"reminder,omitempty"`
	CreatedAt         time.Time `firestore:"createdAt" json:"created_at"`
}
