package utils_test

import (
	"testing"

	"backend/utils"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantErr  bool
	}{
		{"typical adult", 170, 70, 24.22, false},
		{"tall and heavy", 190, 95, 26.32, false},
		{"rounded to two decimals", 180, 81.5, 25.15, false},
		{"zero height", 0, 70, 0, true},
		{"zero weight", 170, 0, 0, true},
		{"negative weight", 170, -5, 0, true},
		{"implausible height", 300, 70, 0, true},
		{"implausible weight", 170, 500, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := utils.CalculateBMI(tc.heightCm, tc.weightKg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25.0, "Overweight"},
		{31.0, "Obesity class I"},
		{37.5, "Obesity class II"},
		{42.0, "Obesity class III"},
	}
	for _, tc := range tests {
		if got := utils.BMICategory(tc.bmi); got != tc.want {
			t.Fatalf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
