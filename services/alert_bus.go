package services

import (
	"context"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"backend/models"
)

type alertDeps struct {
	store *firestore.Client
	rt    *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(store *firestore.Client, rt *RealtimeHub) {
	_alert = alertDeps{store: store, rt: rt}
}

// EmitAlert persists an alert for the user and pushes it to any open
// realtime connections. Safe to call anywhere, including before init.
func EmitAlert(ctx context.Context, userID, typ, message string) {
	if _alert.store == nil {
		return
	}

	a := models.Alert{Type: typ, Message: message, CreatedAt: time.Now()}
	doc := _alert.store.Collection("users").Doc(userID).Collection("alerts").NewDoc()
	if _, err := doc.Set(ctx, a); err != nil {
		// Not broadcast either: clients must never hold an alert id
		// that has no document behind it.
		log.Printf("alert: persisting alert for %s: %v", userID, err)
		return
	}
	a.ID = doc.ID

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

// Alert listing page sizes.
const (
	defaultAlertLimit = 50
	maxAlertLimit     = 200
)

// clampAlertLimit applies the default and ceiling page sizes to a
// client-supplied limit.
func clampAlertLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultAlertLimit
	case limit > maxAlertLimit:
		return maxAlertLimit
	}
	return limit
}

// ListAlerts returns the user's most recent alerts, newest first.
func ListAlerts(ctx context.Context, userID string, limit int) ([]models.Alert, error) {
	iter := _alert.store.Collection("users").Doc(userID).Collection("alerts").
		OrderBy("createdAt", firestore.Desc).
		Limit(clampAlertLimit(limit)).
		Documents(ctx)

	alerts := []models.Alert{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var a models.Alert
		if err := doc.DataTo(&a); err != nil {
			return nil, err
		}
		a.ID = doc.Ref.ID
		alerts = append(alerts, a)
	}
	return alerts, nil
}
