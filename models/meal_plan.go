package models

import "time"

// GeneratedMealPlan is the generator's output contract: five free-text
// recipes, one per meal slot of a day.
type GeneratedMealPlan struct {
	Breakfast      string `firestore:"breakfast" json:"breakfast"`
	MorningSnack   string `firestore:"morningSnack" json:"morning_snack"`
	Lunch          string `firestore:"lunch" json:"lunch"`
	AfternoonSnack string `firestore:"afternoonSnack" json:"afternoon_snack"`
	Dinner         string `firestore:"dinner" json:"dinner"`
}

// StoredMealPlan is a plan saved under users/{uid}/mealPlans. CreatedAt
// is kept when a plan is re-saved under its existing id.
type StoredMealPlan struct {
	ID   string `firestore:"-" json:"id"`
	Name string `firestore:"name" json:"name"`
	GeneratedMealPlan
	CreatedAt time.Time `firestore:"createdAt" json:"created_at"`
}
