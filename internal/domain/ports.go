package domain

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned by a SessionStore when the user has no
// active session yet.
var ErrSessionNotFound = errors.New("session not found")

// ConversationContext gives the reply generator minimal context about the
// turn being processed.
type ConversationContext struct {
	SessionID SessionID
	UserID    UserID
	Stage     Stage
}

// ReplyGenerator turns a stage instruction into the next outgoing message.
// Any failure propagates to the caller; the core performs no retries.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, instruction string, convCtx ConversationContext) (string, error)
}

// SessionStore defines session persistence, keyed by user identity.
type SessionStore interface {
	Get(userID UserID) (*Session, error)
	Put(session *Session) error
	Delete(userID UserID) error
}
