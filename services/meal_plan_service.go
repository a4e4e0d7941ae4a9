package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"backend/models"
)

type MealPlanService struct {
	store *firestore.Client
}

func NewMealPlanService(store *firestore.Client) *MealPlanService {
	return &MealPlanService{store: store}
}

func (s *MealPlanService) plansCol(userID string) *firestore.CollectionRef {
	return s.store.Collection("users").Doc(userID).Collection("mealPlans")
}

// Save persists a generated plan. With an existing id the document is
// overwritten in place and keeps its original creation time; without
// one a new document is created with the current time.
func (s *MealPlanService) Save(ctx context.Context, userID string, plan models.GeneratedMealPlan, name, existingID string) (*models.StoredMealPlan, error) {
	stored := models.StoredMealPlan{
		Name:              name,
		GeneratedMealPlan: plan,
		CreatedAt:         time.Now(),
	}

	var doc *firestore.DocumentRef
	if existingID != "" {
		doc = s.plansCol(userID).Doc(existingID)
		snap, err := doc.Get(ctx)
		var prior map[string]any
		if err == nil {
			prior = snap.Data()
		}
		created, err := effectiveCreatedAt(prior, err, stored.CreatedAt)
		if err != nil {
			return nil, err
		}
		stored.CreatedAt = created
	} else {
		doc = s.plansCol(userID).NewDoc()
	}

	if _, err := doc.Set(ctx, stored); err != nil {
		return nil, err
	}
	stored.ID = doc.ID
	return &stored, nil
}

// List returns the user's plans ordered by creation time, newest
// first. Documents written by older clients carried the creation time
// as a date string or a {seconds, nanoseconds} map; those are repaired
// on read (the next in-place save rewrites them in canonical form), so
// ordering happens here rather than in the store query.
func (s *MealPlanService) List(ctx context.Context, userID string) ([]models.StoredMealPlan, error) {
	iter := s.plansCol(userID).Documents(ctx)
	plans := []models.StoredMealPlan{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		plans = append(plans, decodeStoredPlan(doc.Ref.ID, doc.Data()))
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	return plans, nil
}

func (s *MealPlanService) Delete(ctx context.Context, userID, id string) error {
	_, err := s.plansCol(userID).Doc(id).Delete(ctx)
	return err
}

// effectiveCreatedAt resolves the creation time when saving against an
// existing id. A readable prior document keeps its repaired creation
// time; a missing one means the client held a stale id and the save
// recreates the document stamped now; any other read failure aborts
// the save.
func effectiveCreatedAt(prior map[string]any, readErr error, now time.Time) (time.Time, error) {
	switch {
	case readErr == nil:
		return normalizeCreatedAt(prior["createdAt"], now), nil
	case status.Code(readErr) == codes.NotFound:
		return now, nil
	}
	return time.Time{}, readErr
}

// decodeStoredPlan tolerates the shape drift of older documents rather
// than failing the whole listing on one bad field.
func decodeStoredPlan(id string, data map[string]any) models.StoredMealPlan {
	str := func(key string) string {
		v, _ := data[key].(string)
		return v
	}
	return models.StoredMealPlan{
		ID:   id,
		Name: str("name"),
		GeneratedMealPlan: models.GeneratedMealPlan{
			Breakfast:      str("breakfast"),
			MorningSnack:   str("morningSnack"),
			Lunch:          str("lunch"),
			AfternoonSnack: str("afternoonSnack"),
			Dinner:         str("dinner"),
		},
		CreatedAt: normalizeCreatedAt(data["createdAt"], time.Time{}),
	}
}

// normalizeCreatedAt converts the historical wire shapes of the
// creation time (native timestamp, date string, seconds/nanoseconds
// map) to the canonical time.Time.
func normalizeCreatedAt(v any, fallback time.Time) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, dateLayout} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case map[string]any:
		if secs, ok := asInt64(t["seconds"]); ok {
			nanos, _ := asInt64(t["nanoseconds"])
			return time.Unix(secs, nanos)
		}
	}
	return fallback
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}
