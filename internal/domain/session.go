package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the per-user accumulated state across turns of one conversation.
// Exactly one session exists per user at a time; /start replaces it wholesale.
type Session struct {
	ID     SessionID
	UserID UserID
	Stage  Stage

	// Profile fields, each populated once by the stage that consumes the
	// corresponding answer.
	Goal        string
	Level       string
	Language    Language
	PastCourses string

	// LastUserMessage is overwritten on every inbound message and read by
	// the handler of the current stage.
	LastUserMessage string

	// Reply is the most recently generated outgoing message.
	Reply string

	CreatedAt Timestamp
	UpdatedAt Timestamp
}

// NewSession creates a fresh session positioned at the start of the pipeline.
func NewSession(userID UserID, now time.Time) *Session {
	return &Session{
		ID:        SessionID(uuid.NewString()),
		UserID:    userID,
		Stage:     StageInit,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
