package models

import "time"

// User is the users/{uid} profile document: account metadata plus the
// health attributes the meal planner personalizes on.
type User struct {
	ID          string    `firestore:"-" json:"id"`
	Email       string    `firestore:"email" json:"email"`
	Password    string    `firestore:"password" json:"-"`
	FirstName   string    `firestore:"firstName" json:"first_name"`
	LastName    string    `firestore:"lastName" json:"last_name"`
	Role        string    `firestore:"role" json:"role"` // "patient" | "admin"
	Age         int       `firestore:"age,omitempty" json:"age,omitempty"`
	HeightCm    float64   `firestore:"heightCm,omitempty" json:"height_cm,omitempty"`
	WeightKg    float64   `firestore:"weightKg,omitempty" json:"weight_kg,omitempty"`
	BMI         float64   `firestore:"bmi,omitempty" json:"bmi,omitempty"` // derived, recomputed with height/weight
	Allergies   []string  `firestore:"allergies,omitempty" json:"allergies,omitempty"`
	Pathologies []string  `firestore:"pathologies,omitempty" json:"pathologies,omitempty"`
	Disabled    bool      `firestore:"disabled" json:"-"`
	CreatedAt   time.Time `firestore:"createdAt" json:"created_at"`
}
