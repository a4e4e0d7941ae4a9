package models

import "time"

// Alert is a users/{uid}/alerts document, also pushed over the realtime
// channel when the user has a connection open.
type Alert struct {
	ID        string    `firestore:"-" json:"id"`
	Type      string    `firestore:"type" json:"type"` // "warning" | "info"
	Message   string    `firestore:"message" json:"message"`
	CreatedAt time.Time `firestore:"createdAt" json:"created_at"`
}
