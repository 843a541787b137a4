package dialog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coursier/coursier-agent/internal/domain"
	"github.com/coursier/coursier-agent/internal/observability"
)

// Service drives the conversation one turn at a time: it loads the user's
// session, advances the stage pipeline, asks the reply generator for the
// outgoing message and persists the updated session.
//
// Turns for the same user are serialized through a per-user lock, so two
// near-simultaneous messages advance the pipeline twice in sequence instead
// of racing on the same base state. Turns for different users run in
// parallel.
type Service struct {
	generator  domain.ReplyGenerator
	sessions   domain.SessionStore
	now        func() time.Time
	genTimeout time.Duration

	mu    sync.Mutex
	locks map[domain.UserID]*sync.Mutex
}

func NewService(generator domain.ReplyGenerator, sessions domain.SessionStore, genTimeout time.Duration) *Service {
	if genTimeout <= 0 {
		genTimeout = 60 * time.Second
	}

	return &Service{
		generator:  generator,
		sessions:   sessions,
		now:        time.Now,
		genTimeout: genTimeout,
		locks:      make(map[domain.UserID]*sync.Mutex),
	}
}

// StartConversation discards any previous session for the user, creates a
// fresh one and runs the opening turn. Returns the greeting reply.
func (s *Service) StartConversation(ctx context.Context, userID domain.UserID) (string, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.startLocked(ctx, userID)
}

// HandleMessage drives one turn for an inbound free-text message. If the
// user has no session yet, the message is treated as a start trigger.
//
// On generator failure the session is left unpersisted, so the next message
// retries the same stage with identical semantics.
func (s *Service) HandleMessage(ctx context.Context, userID domain.UserID, text string) (string, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	stored, err := s.sessions.Get(userID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return s.startLocked(ctx, userID)
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}

	// Work on a copy so a failed turn leaves the stored session untouched.
	session := *stored
	session.LastUserMessage = text

	return s.runTurn(ctx, &session)
}

// startLocked assumes the user's lock is held.
func (s *Service) startLocked(ctx context.Context, userID domain.UserID) (string, error) {
	session := domain.NewSession(userID, s.now())
	return s.runTurn(ctx, session)
}

func (s *Service) runTurn(ctx context.Context, session *domain.Session) (string, error) {
	turnID := uuid.NewString()
	log := observability.LoggerFromContext(ctx).With(
		"turn_id", turnID,
		"user_id", session.UserID,
		"stage", session.Stage,
	)

	instruction := Advance(session)
	if instruction == "" {
		// Terminal stage: no generation, no reply, nothing new to say.
		session.UpdatedAt = s.now()
		if err := s.sessions.Put(session); err != nil {
			return "", fmt.Errorf("save session: %w", err)
		}
		log.Info("turn completed without reply", "next_stage", session.Stage)
		return "", nil
	}

	gctx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	reply, err := s.generator.GenerateReply(gctx, instruction, domain.ConversationContext{
		SessionID: session.ID,
		UserID:    session.UserID,
		Stage:     session.Stage,
	})
	if err != nil {
		log.Error("reply generation failed", "error", err)
		return "", fmt.Errorf("generate reply: %w", err)
	}

	session.Reply = reply
	session.UpdatedAt = s.now()
	if err := s.sessions.Put(session); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	log.Info("turn completed", "next_stage", session.Stage)
	return reply, nil
}

func (s *Service) userLock(userID domain.UserID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
