package services

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"backend/config"
	"backend/models"
)

var (
	ErrUnknownPreferenceKind = errors.New("unknown preference kind")
	ErrFoodItemNotFound      = errors.New("food item not found")
)

func preferencesDoc(userID string) string { return "users/" + userID + "/foodPreferences/default" }

// LoadPreferences returns the current food catalog with the user's
// stored preferences reconciled onto it. A missing preferences document
// yields the plain catalog; an unreachable store yields the plain
// catalog together with the error so callers can surface a non-fatal
// notification.
func LoadPreferences(ctx context.Context, userID string) ([]models.FoodCategory, error) {
	catalog := models.DefaultCatalog()

	snap, err := config.Store.Doc(preferencesDoc(userID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return catalog, nil
		}
		return catalog, err
	}

	var stored models.FoodPreferences
	if err := snap.DataTo(&stored); err != nil {
		return catalog, err
	}
	return MergePreferences(catalog, stored.Categories), nil
}

// MergePreferences overlays stored preference state onto the catalog,
// matching items by id first and falling back to name when catalog ids
// have drifted between versions. Neither input is modified; a new
// merged slice is returned.
func MergePreferences(catalog, stored []models.FoodCategory) []models.FoodCategory {
	byID := make(map[string]models.Preference)
	byName := make(map[string]models.Preference)
	for _, cat := range stored {
		for _, it := range cat.Items {
			if it.Preference == models.PreferenceNone {
				continue
			}
			if it.ID != "" {
				byID[it.ID] = it.Preference
			}
			if it.Name != "" {
				byName[it.Name] = it.Preference
			}
		}
	}

	merged := make([]models.FoodCategory, len(catalog))
	for i, cat := range catalog {
		items := make([]models.FoodItem, len(cat.Items))
		copy(items, cat.Items)
		for j := range items {
			if p, ok := byID[items[j].ID]; ok {
				items[j].Preference = p
			} else if p, ok := byName[items[j].Name]; ok {
				items[j].Preference = p
			}
		}
		cat.Items = items
		merged[i] = cat
	}
	return merged
}

// TogglePreference sets exactly one preference kind on the item,
// replacing whatever was set before; toggling the kind already set
// returns the item to neutral. The whole merged list is persisted.
func TogglePreference(ctx context.Context, userID, categoryID, itemID string, kind models.Preference) ([]models.FoodCategory, error) {
	if !kind.Valid() || kind == models.PreferenceNone {
		return nil, ErrUnknownPreferenceKind
	}

	categories, err := LoadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ApplyToggle(categories, categoryID, itemID, kind) {
		return nil, ErrFoodItemNotFound
	}

	prefs := models.FoodPreferences{Categories: categories, UpdatedAt: time.Now()}
	if _, err := config.Store.Doc(preferencesDoc(userID)).Set(ctx, prefs); err != nil {
		return nil, err
	}
	return categories, nil
}

// ApplyToggle flips the preference in place and reports whether the
// item was found.
func ApplyToggle(categories []models.FoodCategory, categoryID, itemID string, kind models.Preference) bool {
	for i := range categories {
		if categories[i].ID != categoryID {
			continue
		}
		for j := range categories[i].Items {
			item := &categories[i].Items[j]
			if item.ID != itemID {
				continue
			}
			if item.Preference == kind {
				item.Preference = models.PreferenceNone
			} else {
				item.Preference = kind
			}
			return true
		}
	}
	return false
}
