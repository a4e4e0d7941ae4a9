package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"backend/models"
)

// GeneratorInput is the request contract of the meal plan generator.
type GeneratorInput struct {
	AvailableFoods          string `json:"availableFoods"`
	FoodsToAvoid            string `json:"foodsToAvoid,omitempty"`
	DiabeticResearchSummary string `json:"diabeticResearchSummary"`
	PlanDuration            string `json:"planDuration"`
	PlanName                string `json:"planName,omitempty"`
}

// PlanGenerator produces a meal plan from assembled form inputs. The
// call is an opaque remote invocation: failures are returned verbatim
// and no retry is attempted here.
type PlanGenerator interface {
	Generate(ctx context.Context, input *GeneratorInput) (*models.GeneratedMealPlan, error)
}

// NewPlanGenerator picks the provider from MEAL_PLANNER_PROVIDER:
// "gemini" (the default) or "openai".
func NewPlanGenerator(ctx context.Context) (PlanGenerator, error) {
	switch provider := os.Getenv("MEAL_PLANNER_PROVIDER"); provider {
	case "", "gemini":
		return NewGeminiGenerator(ctx)
	case "openai":
		return NewOpenAIGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown meal planner provider %q", provider)
	}
}

const generatorSystemPrompt = `You are a dietician assistant composing daily meal plans for a
person managing type 2 diabetes and cholesterol. You receive a dietary research summary, the
plan duration, a list of available foods annotated with their glycemic index, and optionally a
list of foods to strictly avoid. Favor foods marked (favori) and never use any food from the
avoid list. Compose a day of five meals and respond with a single JSON object with exactly the
keys "breakfast", "morningSnack", "lunch", "afternoonSnack" and "dinner", each a complete
recipe as plain text. Write the recipes in French.`

func generatorUserPrompt(input *GeneratorInput) string {
	var sb strings.Builder
	if input.PlanName != "" {
		fmt.Fprintf(&sb, "Plan name: %s\n", input.PlanName)
	}
	fmt.Fprintf(&sb, "Plan duration: %s\n\n", input.PlanDuration)
	sb.WriteString("Dietary research summary:\n")
	sb.WriteString(input.DiabeticResearchSummary)
	sb.WriteString("\n\nAvailable foods (one per line, with glycemic index):\n")
	sb.WriteString(input.AvailableFoods)
	if input.FoodsToAvoid != "" {
		sb.WriteString("\n\nFoods to strictly avoid:\n")
		sb.WriteString(input.FoodsToAvoid)
	}
	return sb.String()
}

// generatedPlanWire is the JSON shape both providers answer with.
type generatedPlanWire struct {
	Breakfast      string `json:"breakfast"`
	MorningSnack   string `json:"morningSnack"`
	Lunch          string `json:"lunch"`
	AfternoonSnack string `json:"afternoonSnack"`
	Dinner         string `json:"dinner"`
}

// toPlan checks the five meal slots are present and converts to the
// model type; recipe content is not interpreted further.
func (w *generatedPlanWire) toPlan() (*models.GeneratedMealPlan, error) {
	if w.Breakfast == "" || w.MorningSnack == "" || w.Lunch == "" ||
		w.AfternoonSnack == "" || w.Dinner == "" {
		return nil, errors.New("generator response is missing meal fields")
	}
	return &models.GeneratedMealPlan{
		Breakfast:      w.Breakfast,
		MorningSnack:   w.MorningSnack,
		Lunch:          w.Lunch,
		AfternoonSnack: w.AfternoonSnack,
		Dinner:         w.Dinner,
	}, nil
}
