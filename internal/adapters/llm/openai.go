package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/coursier/coursier-agent/internal/domain"
)

type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a ReplyGenerator backed by an OpenAI-compatible
// chat-completions endpoint.
func NewOpenAIGenerator(apiKey, model string) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: api key must be set")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// GenerateReply implements domain.ReplyGenerator using chat completions.
func (o *OpenAIGenerator) GenerateReply(
	ctx context.Context,
	instruction string,
	_ domain.ConversationContext,
) (string, error) {
	prompt := BuildPrompt(instruction)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.6,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
