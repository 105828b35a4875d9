package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kioooy/SWP391-Project-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts supply alerts to the coordinator chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyShortfall(ctx context.Context, rec *domain.MobilizationRecord) {
	text := fmt.Sprintf(
		"*Inventory shortfall detected*\n\n"+
			"Blood type: %s\n"+
			"Requested: %.0f ml\n"+
			"Shortfall: %.0f ml\n"+
			"A mobilization offer is waiting for confirmation.",
		rec.BloodType, rec.VolumeMl, rec.ShortfallMl,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyMobilizationRequested(ctx context.Context, rec *domain.MobilizationRecord) {
	text := fmt.Sprintf(
		"*Donor mobilization requested*\n\n"+
			"Blood type: %s\n"+
			"Volume: %.0f ml\n"+
			"Created: %s",
		rec.BloodType, rec.VolumeMl, rec.CreatedAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOfferLapsed(ctx context.Context, rec *domain.MobilizationRecord) {
	text := fmt.Sprintf(
		"*Mobilization offer lapsed without action*\n\n"+
			"Blood type: %s\n"+
			"Shortfall: %.0f ml\n"+
			"Offered: %s",
		rec.BloodType, rec.ShortfallMl, rec.CreatedAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no coordinator chat)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
