package models

import "time"

// Preference is the user's stance on a catalog food item. Exactly one
// value applies at a time, which makes the inconsistent combinations a
// favorite/disliked/allergenic boolean triad would allow unrepresentable.
type Preference string

const (
	PreferenceNone       Preference = ""
	PreferenceFavorite   Preference = "favorite"
	PreferenceDisliked   Preference = "disliked"
	PreferenceAllergenic Preference = "allergenic"
)

// Valid reports whether p is one of the known preference values.
func (p Preference) Valid() bool {
	switch p {
	case PreferenceNone, PreferenceFavorite, PreferenceDisliked, PreferenceAllergenic:
		return true
	}
	return false
}

// Avoided reports whether an item with this preference is excluded from
// generated plans.
func (p Preference) Avoided() bool {
	return p == PreferenceDisliked || p == PreferenceAllergenic
}

// Annotation is the marker appended to an item's line in the generator
// prompt, in the wording the plans are written in.
func (p Preference) Annotation() string {
	switch p {
	case PreferenceFavorite:
		return "(favori)"
	case PreferenceDisliked:
		return "(non aimé)"
	case PreferenceAllergenic:
		return "(allergène)"
	}
	return ""
}

// NutritionFacts are optional per-100g values for a catalog item.
type NutritionFacts struct {
	Calories float64 `firestore:"calories,omitempty" json:"calories,omitempty"`
	Carbs    float64 `firestore:"carbs,omitempty" json:"carbs,omitempty"`
	Protein  float64 `firestore:"protein,omitempty" json:"protein,omitempty"`
	Fat      float64 `firestore:"fat,omitempty" json:"fat,omitempty"`
	Sugars   float64 `firestore:"sugars,omitempty" json:"sugars,omitempty"`
	Fiber    float64 `firestore:"fiber,omitempty" json:"fiber,omitempty"`
	Sodium   float64 `firestore:"sodium,omitempty" json:"sodium,omitempty"`
}

// FoodItem is a catalog entry. ID is stable across catalog versions;
// Name doubles as a merge key when stored preferences carry ids from an
// older catalog.
type FoodItem struct {
	ID            string          `firestore:"id" json:"id"`
	Name          string          `firestore:"name" json:"name"`
	GlycemicIndex string          `firestore:"glycemicIndex" json:"glycemic_index"` // free text, e.g. "IG bas"
	Preference    Preference      `firestore:"preference,omitempty" json:"preference,omitempty"`
	Nutrition     *NutritionFacts `firestore:"nutrition,omitempty" json:"nutrition,omitempty"`
	Notes         string          `firestore:"notes,omitempty" json:"notes,omitempty"`
}

type FoodCategory struct {
	ID    string     `firestore:"id" json:"id"`
	Name  string     `firestore:"name" json:"name"`
	Items []FoodItem `firestore:"items" json:"items"`
}

// FoodPreferences is the users/{uid}/foodPreferences/default document:
// the catalog overlaid with the user's per-item preference state.
type FoodPreferences struct {
	Categories []FoodCategory `firestore:"categories" json:"categories"`
	UpdatedAt  time.Time      `firestore:"updatedAt" json:"updated_at"`
}
