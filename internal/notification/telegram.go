package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyClaimCreated(ctx context.Context, user *domain.User, hangout *domain.Hangout) {
	text := fmt.Sprintf(
		"*Slot claimed!*\n\nHangout: %s\nDate (UTC): %s",
		hangout.Title, hangout.StartsAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyOfferCompleted(ctx context.Context, user *domain.User, offer *domain.Offer, hangout *domain.Hangout) {
	text := fmt.Sprintf(
		"*Offer finalized*\n\nHangout: %s\nDate (UTC): %s",
		hangout.Title, hangout.StartsAt.Format("02.01.2006 15:04"),
	)
	if offer.FinalTotalCents != nil && offer.ClaimedCount > 0 {
		share := *offer.FinalTotalCents / int64(offer.ClaimedCount)
		text += fmt.Sprintf("\nYour share: %d.%02d", share/100, share%100)
	}
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyOfferCancelled(ctx context.Context, user *domain.User, hangout *domain.Hangout) {
	text := fmt.Sprintf(
		"*Offer cancelled*\n\nYour claim for %s was released because the offer was withdrawn.",
		hangout.Title,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
