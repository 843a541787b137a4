package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/coursier/coursier-agent/internal/domain"
)

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a ReplyGenerator backed by Vertex AI (Gemini).
func NewGeminiClient(ctx context.Context, projectID, location, modelName string) (*GeminiClient, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("gemini: project and location must be set")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateReply implements domain.ReplyGenerator using Vertex AI.
func (g *GeminiClient) GenerateReply(
	ctx context.Context,
	instruction string,
	_ domain.ConversationContext,
) (string, error) {
	prompt := BuildPrompt(instruction)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt.User, genai.RoleUser),
	}

	temp := float32(0.6)
	topP := float32(0.9)
	outputTokens := int32(1024)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   outputTokens,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}

	return text, nil
}
