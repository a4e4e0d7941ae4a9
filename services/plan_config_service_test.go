package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"backend/models"
	"backend/services"
)

func TestPlanDurationDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		days  int
		ok    bool
	}{
		{"same day", "2026-03-05", "2026-03-05", 1, true},
		{"one week inclusive", "2026-03-01", "2026-03-07", 7, true},
		{"across month boundary", "2026-02-27", "2026-03-02", 4, true},
		{"end before start", "2026-03-05", "2026-03-04", 0, false},
		{"bad start date", "05/03/2026", "2026-03-07", 0, false},
		{"bad end date", "2026-03-05", "", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			days, ok := services.PlanDurationDays(tc.start, tc.end)
			if ok != tc.ok || days != tc.days {
				t.Fatalf("got days=%d ok=%v, want days=%d ok=%v", days, ok, tc.days, tc.ok)
			}
		})
	}
}

func TestEndDateForDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		days  int
		end   string
		ok    bool
	}{
		{"single day", "2026-03-05", 1, "2026-03-05", true},
		{"three days", "2026-03-05", 3, "2026-03-07", true},
		{"max duration", "2026-01-01", services.MaxPlanDays, "2026-12-31", true},
		{"over max", "2026-01-01", services.MaxPlanDays + 1, "", false},
		{"zero days", "2026-03-05", 0, "", false},
		{"negative days", "2026-03-05", -2, "", false},
		{"bad start date", "not-a-date", 3, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			end, ok := services.EndDateForDuration(tc.start, tc.days)
			if ok != tc.ok || end != tc.end {
				t.Fatalf("got end=%q ok=%v, want end=%q ok=%v", end, ok, tc.end, tc.ok)
			}
		})
	}
}

func TestDurationAndRangeAgree(t *testing.T) {
	// Deriving the end date from a count, then counting the range back,
	// must return the original count.
	for _, days := range []int{1, 2, 30, 365} {
		end, ok := services.EndDateForDuration("2026-03-05", days)
		if !ok {
			t.Fatalf("EndDateForDuration failed for %d days", days)
		}
		got, ok := services.PlanDurationDays("2026-03-05", end)
		if !ok || got != days {
			t.Fatalf("round trip for %d days gave %d (ok=%v)", days, got, ok)
		}
	}
}

func TestFormatPlanDuration(t *testing.T) {
	if got := services.FormatPlanDuration(1); got != "1 jour" {
		t.Fatalf("expected %q, got %q", "1 jour", got)
	}
	if got := services.FormatPlanDuration(7); got != "7 jours" {
		t.Fatalf("expected %q, got %q", "7 jours", got)
	}
}

func TestDefaultConfiguration(t *testing.T) {
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	cfg := services.DefaultConfiguration(now)

	if cfg.SelectionMode != models.SelectionModeDates {
		t.Fatalf("expected dates mode, got %q", cfg.SelectionMode)
	}
	if cfg.StartDate != "2026-03-05" || cfg.EndDate != "2026-03-05" {
		t.Fatalf("expected a one-day plan starting tomorrow, got %s..%s", cfg.StartDate, cfg.EndDate)
	}
	if cfg.DurationDays != 1 || cfg.DurationStartDate != "2026-03-05" {
		t.Fatalf("duration mode fields not pre-filled: %d from %s", cfg.DurationDays, cfg.DurationStartDate)
	}
	if cfg.ResearchSummary == "" {
		t.Fatal("expected a pre-filled research summary")
	}
}

func testCategories() []models.FoodCategory {
	return []models.FoodCategory{
		{
			ID:   "feculents",
			Name: "Féculents & Céréales",
			Items: []models.FoodItem{
				{ID: "avoine", Name: "Flocons d'avoine", GlycemicIndex: "IG bas", Preference: models.PreferenceFavorite},
				{ID: "riz-blanc", Name: "Riz blanc", GlycemicIndex: "IG élevé", Preference: models.PreferenceDisliked},
			},
		},
		{
			ID:   "proteines",
			Name: "Protéines",
			Items: []models.FoodItem{
				{ID: "crevettes", Name: "Crevettes", GlycemicIndex: "IG bas", Preference: models.PreferenceAllergenic},
				{ID: "poulet", Name: "Poulet", GlycemicIndex: "IG bas"},
			},
		},
	}
}

func TestAssembleGeneratorInput(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cfg := models.PlanConfiguration{
		PlanName:          "Semaine équilibre",
		ResearchSummary:   "IG bas en priorité",
		SelectionMode:     models.SelectionModeDuration,
		DurationStartDate: "2026-03-05",
		DurationDays:      3,
	}

	input, err := services.AssembleGeneratorInput(cfg, testCategories(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.PlanDuration != "3 jours" {
		t.Fatalf("expected duration %q, got %q", "3 jours", input.PlanDuration)
	}
	if input.PlanName != "Semaine équilibre" {
		t.Fatalf("unexpected plan name %q", input.PlanName)
	}
	if input.DiabeticResearchSummary != "IG bas en priorité" {
		t.Fatalf("unexpected research summary %q", input.DiabeticResearchSummary)
	}

	if !strings.Contains(input.AvailableFoods, "Flocons d'avoine IG bas (favori)") {
		t.Fatalf("favorite missing its annotation:\n%s", input.AvailableFoods)
	}
	if !strings.Contains(input.AvailableFoods, "Poulet IG bas") {
		t.Fatalf("neutral item missing from available foods:\n%s", input.AvailableFoods)
	}
	if !strings.Contains(input.FoodsToAvoid, "Riz blanc IG élevé (non aimé)") {
		t.Fatalf("disliked item missing from avoid list:\n%s", input.FoodsToAvoid)
	}
	if !strings.Contains(input.FoodsToAvoid, "Crevettes IG bas (allergène)") {
		t.Fatalf("allergenic item missing from avoid list:\n%s", input.FoodsToAvoid)
	}
	if strings.Contains(input.AvailableFoods, "Riz blanc") || strings.Contains(input.AvailableFoods, "Crevettes") {
		t.Fatalf("avoided items leaked into available foods:\n%s", input.AvailableFoods)
	}
}

func TestAssembleGeneratorInputDatesMode(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cfg := models.PlanConfiguration{
		SelectionMode: models.SelectionModeDates,
		StartDate:     "2026-03-05",
		EndDate:       "2026-03-05",
	}

	input, err := services.AssembleGeneratorInput(cfg, testCategories(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.PlanDuration != "1 jour" {
		t.Fatalf("expected %q, got %q", "1 jour", input.PlanDuration)
	}
}

func TestAssembleGeneratorInputErrors(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("no liked foods", func(t *testing.T) {
		categories := []models.FoodCategory{{
			ID:   "feculents",
			Name: "Féculents",
			Items: []models.FoodItem{
				{ID: "riz", Name: "Riz blanc", GlycemicIndex: "IG élevé", Preference: models.PreferenceDisliked},
			},
		}}
		cfg := models.PlanConfiguration{
			SelectionMode: models.SelectionModeDates,
			StartDate:     "2026-03-05",
			EndDate:       "2026-03-06",
		}
		_, err := services.AssembleGeneratorInput(cfg, categories, now)
		if !errors.Is(err, services.ErrNoLikedFoods) {
			t.Fatalf("expected ErrNoLikedFoods, got %v", err)
		}
	})

	t.Run("start date in past", func(t *testing.T) {
		cfg := models.PlanConfiguration{
			SelectionMode: models.SelectionModeDates,
			StartDate:     "2026-02-28",
			EndDate:       "2026-03-06",
		}
		_, err := services.AssembleGeneratorInput(cfg, testCategories(), now)
		if !errors.Is(err, services.ErrStartDateInPast) {
			t.Fatalf("expected ErrStartDateInPast, got %v", err)
		}
	})

	t.Run("start today is allowed", func(t *testing.T) {
		cfg := models.PlanConfiguration{
			SelectionMode: models.SelectionModeDates,
			StartDate:     "2026-03-01",
			EndDate:       "2026-03-02",
		}
		if _, err := services.AssembleGeneratorInput(cfg, testCategories(), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		cfg := models.PlanConfiguration{
			SelectionMode: models.SelectionModeDates,
			StartDate:     "2026-03-06",
			EndDate:       "2026-03-05",
		}
		_, err := services.AssembleGeneratorInput(cfg, testCategories(), now)
		if !errors.Is(err, services.ErrInvalidPlanPeriod) {
			t.Fatalf("expected ErrInvalidPlanPeriod, got %v", err)
		}
	})

	t.Run("unknown selection mode", func(t *testing.T) {
		cfg := models.PlanConfiguration{SelectionMode: "weeks"}
		_, err := services.AssembleGeneratorInput(cfg, testCategories(), now)
		if !errors.Is(err, services.ErrInvalidPlanPeriod) {
			t.Fatalf("expected ErrInvalidPlanPeriod, got %v", err)
		}
	})
}
