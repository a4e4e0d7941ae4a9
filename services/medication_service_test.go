package services_test

import (
	"testing"

	"backend/models"
	"backend/services"
)

func TestCoerceNonNegativeInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"json number", float64(30), 30},
		{"go int", 12, 12},
		{"numeric string", "25", 25},
		{"padded string", " 25 ", 25},
		{"negative number", float64(-3), 0},
		{"negative string", "-3", 0},
		{"empty string", "", 0},
		{"garbage string", "beaucoup", 0},
		{"nil", nil, 0},
		{"wrong type", true, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.CoerceNonNegativeInt(tc.in); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNormalizeMedicationThreshold(t *testing.T) {
	t.Run("valid threshold kept", func(t *testing.T) {
		med := services.NormalizeMedication(services.MedicationInput{
			Name:              "Metformine",
			Stock:             float64(60),
			LowStockThreshold: float64(10),
		})
		if med.Stock != 60 {
			t.Fatalf("expected stock 60, got %d", med.Stock)
		}
		if med.LowStockThreshold == nil || *med.LowStockThreshold != 10 {
			t.Fatalf("expected threshold 10, got %v", med.LowStockThreshold)
		}
	})

	t.Run("invalid threshold dropped", func(t *testing.T) {
		med := services.NormalizeMedication(services.MedicationInput{
			Name:              "Metformine",
			Stock:             "abc",
			LowStockThreshold: "n/a",
		})
		if med.Stock != 0 {
			t.Fatalf("invalid stock should collapse to 0, got %d", med.Stock)
		}
		if med.LowStockThreshold != nil {
			t.Fatalf("invalid threshold should be omitted, got %v", med.LowStockThreshold)
		}
	})

	t.Run("zero threshold is valid", func(t *testing.T) {
		med := services.NormalizeMedication(services.MedicationInput{
			Name:              "Metformine",
			LowStockThreshold: float64(0),
		})
		if med.LowStockThreshold == nil || *med.LowStockThreshold != 0 {
			t.Fatalf("threshold 0 should be kept, got %v", med.LowStockThreshold)
		}
	})
}

func TestNormalizeMedicationReminder(t *testing.T) {
	t.Run("interval cleared unless everyXdays", func(t *testing.T) {
		med := services.NormalizeMedication(services.MedicationInput{
			Name: "Atorvastatine",
			Reminder: &models.Reminder{
				Frequency:    models.FrequencyDaily,
				Times:        []string{"08:00", "20:00"},
				IntervalDays: 3,
				SpecificDays: []string{"monday"},
			},
		})
		if med.Reminder.IntervalDays != 0 {
			t.Fatalf("interval should be cleared for daily, got %d", med.Reminder.IntervalDays)
		}
		if med.Reminder.SpecificDays != nil {
			t.Fatalf("specific days should be cleared for daily, got %v", med.Reminder.SpecificDays)
		}
		if len(med.Reminder.Times) != 2 {
			t.Fatalf("times should be kept, got %v", med.Reminder.Times)
		}
	})

	t.Run("everyXdays keeps interval", func(t *testing.T) {
		med := services.NormalizeMedication(services.MedicationInput{
			Name: "Atorvastatine",
			Reminder: &models.Reminder{
				Frequency:    models.FrequencyEveryXDays,
				IntervalDays: 2,
			},
		})
		if med.Reminder.IntervalDays != 2 {
			t.Fatalf("expected interval 2, got %d", med.Reminder.IntervalDays)
		}
	})

	t.Run("specificDays keeps days", func(t *testing.T) {
		med := services.NormalizeMedication(services.MedicationInput{
			Name: "Atorvastatine",
			Reminder: &models.Reminder{
				Frequency:    models.FrequencySpecificDays,
				SpecificDays: []string{"monday", "thursday"},
			},
		})
		if len(med.Reminder.SpecificDays) != 2 {
			t.Fatalf("expected days kept, got %v", med.Reminder.SpecificDays)
		}
	})

	t.Run("nil reminder stays nil", func(t *testing.T) {
		med := services.NormalizeMedication(services.MedicationInput{Name: "Atorvastatine"})
		if med.Reminder != nil {
			t.Fatalf("expected nil reminder, got %v", med.Reminder)
		}
	})

	t.Run("input reminder not mutated", func(t *testing.T) {
		in := &models.Reminder{Frequency: models.FrequencyDaily, IntervalDays: 5}
		services.NormalizeMedication(services.MedicationInput{Name: "X", Reminder: in})
		if in.IntervalDays != 5 {
			t.Fatal("normalization mutated the caller's reminder")
		}
	})
}
