package llm

import (
	"context"

	"github.com/coursier/coursier-agent/internal/domain"
)

// MockGenerator echoes the instruction back as the reply. It keeps the
// dialogue fully inspectable in tests and local development without any
// network dependency.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (m *MockGenerator) GenerateReply(_ context.Context, instruction string, _ domain.ConversationContext) (string, error) {
	return instruction, nil
}
