package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"

	"backend/models"
)

// OpenAIGenerator generates plans through the chat completions API.
// Credentials come from OPENAI_API_KEY, read by the client itself.
type OpenAIGenerator struct {
	client openai.Client
	model  string
}

func NewOpenAIGenerator() *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(),
		model:  openai.ChatModelGPT4oMini,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, input *GeneratorInput) (*models.GeneratedMealPlan, error) {
	res, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(generatorSystemPrompt),
			openai.UserMessage(generatorUserPrompt(input)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generator: calling chat completion: %w", err)
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("generator: empty completion response")
	}

	// The model occasionally wraps the object in a markdown fence.
	text := strings.TrimSpace(res.Choices[0].Message.Content)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var wire generatedPlanWire
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, fmt.Errorf("generator: unmarshalling plan: %w", err)
	}
	return wire.toPlan()
}
