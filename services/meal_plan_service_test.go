package services

import (
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNormalizeCreatedAt(t *testing.T) {
	fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{
			"native timestamp",
			time.Date(2026, 3, 5, 8, 30, 0, 0, time.UTC),
			time.Date(2026, 3, 5, 8, 30, 0, 0, time.UTC),
		},
		{
			"rfc3339 string",
			"2026-03-05T08:30:00Z",
			time.Date(2026, 3, 5, 8, 30, 0, 0, time.UTC),
		},
		{
			"date-only string",
			"2026-03-05",
			time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			"seconds map",
			map[string]any{"seconds": float64(1767225600), "nanoseconds": float64(0)},
			time.Unix(1767225600, 0),
		},
		{
			"seconds map without nanos",
			map[string]any{"seconds": int64(1767225600)},
			time.Unix(1767225600, 0),
		},
		{"unparseable string", "yesterday", fallback},
		{"nil", nil, fallback},
		{"wrong type", 42, fallback},
		{"map without seconds", map[string]any{"nanoseconds": float64(5)}, fallback},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeCreatedAt(tc.in, fallback)
			if !got.Equal(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEffectiveCreatedAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	original := time.Date(2026, 1, 2, 8, 30, 0, 0, time.UTC)

	t.Run("existing document keeps its creation time", func(t *testing.T) {
		got, err := effectiveCreatedAt(map[string]any{"createdAt": original}, nil, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(original) {
			t.Fatalf("re-save replaced the creation time: got %v, want %v", got, original)
		}
	})

	t.Run("legacy creation time is repaired, not replaced", func(t *testing.T) {
		got, err := effectiveCreatedAt(map[string]any{"createdAt": "2026-01-02"}, nil, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("document without a creation time gets now", func(t *testing.T) {
		got, err := effectiveCreatedAt(map[string]any{"name": "Semaine 10"}, nil, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(now) {
			t.Fatalf("got %v, want %v", got, now)
		}
	})

	t.Run("stale id recreates the document stamped now", func(t *testing.T) {
		got, err := effectiveCreatedAt(nil, status.Error(codes.NotFound, "missing"), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(now) {
			t.Fatalf("got %v, want %v", got, now)
		}
	})

	t.Run("other read failures abort the save", func(t *testing.T) {
		readErr := status.Error(codes.Unavailable, "store down")
		if _, err := effectiveCreatedAt(nil, readErr, now); err == nil {
			t.Fatal("expected the read error back")
		}
	})
}

func TestDecodeStoredPlan(t *testing.T) {
	data := map[string]any{
		"name":           "Semaine 10",
		"breakfast":      "Porridge d'avoine",
		"morningSnack":   "Poignée d'amandes",
		"lunch":          "Poulet et lentilles",
		"afternoonSnack": "Yaourt nature",
		"dinner":         "Soupe de légumes",
		"createdAt":      "2026-03-05",
	}

	plan := decodeStoredPlan("abc123", data)

	if plan.ID != "abc123" || plan.Name != "Semaine 10" {
		t.Fatalf("unexpected identity: %q %q", plan.ID, plan.Name)
	}
	if plan.Breakfast != "Porridge d'avoine" || plan.MorningSnack != "Poignée d'amandes" {
		t.Fatalf("morning slots not decoded: %+v", plan.GeneratedMealPlan)
	}
	if plan.Lunch != "Poulet et lentilles" || plan.AfternoonSnack != "Yaourt nature" || plan.Dinner != "Soupe de légumes" {
		t.Fatalf("day slots not decoded: %+v", plan.GeneratedMealPlan)
	}
	if plan.CreatedAt.IsZero() {
		t.Fatal("legacy date string should have been repaired")
	}
}

func TestDecodeStoredPlanToleratesMissingFields(t *testing.T) {
	plan := decodeStoredPlan("x", map[string]any{"breakfast": "Tartines"})

	if plan.Breakfast != "Tartines" {
		t.Fatalf("expected breakfast kept, got %q", plan.Breakfast)
	}
	if plan.Name != "" || plan.Dinner != "" {
		t.Fatalf("missing fields should decode empty, got %+v", plan)
	}
	if !plan.CreatedAt.IsZero() {
		t.Fatal("missing createdAt should stay zero")
	}
}
