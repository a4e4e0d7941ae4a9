package services

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"backend/models"
)

// GeminiGenerator generates plans with the Gemini API, constrained to
// the five-meal JSON shape through a response schema.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: "gemini-2.5-flash"}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, input *GeneratorInput) (*models.GeneratedMealPlan, error) {
	content := []*genai.Content{
		genai.NewContentFromText(generatorUserPrompt(input), genai.RoleUser),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, content, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(generatorSystemPrompt, genai.RoleModel),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type:        "object",
			Description: "A day of meals repeated over the plan duration.",
			Properties: map[string]*genai.Schema{
				"breakfast":      {Type: "string", Description: "The breakfast recipe."},
				"morningSnack":   {Type: "string", Description: "The morning snack recipe."},
				"lunch":          {Type: "string", Description: "The lunch recipe."},
				"afternoonSnack": {Type: "string", Description: "The afternoon snack recipe."},
				"dinner":         {Type: "string", Description: "The dinner recipe."},
			},
			Required: []string{"breakfast", "morningSnack", "lunch", "afternoonSnack", "dinner"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generator: calling GenerateContent: %w", err)
	}
	if len(res.Candidates) != 1 || len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return nil, fmt.Errorf("generator: unexpected response from model: %v", res)
	}

	var wire generatedPlanWire
	if err := json.Unmarshal([]byte(res.Candidates[0].Content.Parts[0].Text), &wire); err != nil {
		return nil, fmt.Errorf("generator: unmarshalling plan: %w", err)
	}
	return wire.toPlan()
}
