package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/coursier/coursier-agent/internal/app/dialog"
	"github.com/coursier/coursier-agent/internal/domain"
	"github.com/coursier/coursier-agent/internal/observability"
)

const (
	typingPlaceholder = "Печатает ответ..."
	failureNotice     = "Не получилось ответить. Попробуй отправить сообщение ещё раз."
)

// Bot is the Telegram transport: it receives updates over long polling and
// hands each message to the dialog service. Updates are handled in separate
// goroutines; per-user ordering is guaranteed by the dialog service itself.
type Bot struct {
	api    *tgbotapi.BotAPI
	dialog *dialog.Service
}

func New(token string, svc *dialog.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	observability.Logger().Info("telegram bot authorized", "username", api.Self.UserName)

	return &Bot{
		api:    api,
		dialog: svc,
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
				continue
			}
			go b.handleMessage(observability.WithUpdateID(ctx, update.UpdateID), update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := domain.UserID(msg.From.ID)
	log := observability.LoggerFromContext(ctx).With("user_id", userID)

	if msg.IsCommand() && msg.Command() != "start" {
		// /start is the only command; anything else is ignored.
		return
	}

	// Transient placeholder shown for the duration of the generation call.
	placeholder, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, typingPlaceholder))
	if err != nil {
		log.Error("failed to send placeholder", "error", err)
		return
	}

	var reply string
	if msg.IsCommand() {
		reply, err = b.dialog.StartConversation(ctx, userID)
	} else {
		reply, err = b.dialog.HandleMessage(ctx, userID, msg.Text)
	}

	if _, delErr := b.api.Request(tgbotapi.NewDeleteMessage(msg.Chat.ID, placeholder.MessageID)); delErr != nil {
		log.Error("failed to delete placeholder", "error", delErr)
	}

	if err != nil {
		log.Error("turn failed", "error", err)
		if _, sendErr := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, failureNotice)); sendErr != nil {
			log.Error("failed to send failure notice", "error", sendErr)
		}
		return
	}

	if reply == "" {
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		log.Error("failed to send reply", "error", err)
	}
}
