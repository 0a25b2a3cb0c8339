package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking activity to the front-desk chat so hotel
// staff can prepare rooms. It degrades to a no-op when unconfigured.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*New room booking*\n\n"+"Booking: #%d\n"+"User: %d\n"+"Room: %d",
		booking.ID, booking.UserID, booking.RoomID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRoomChanged(ctx context.Context, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking moved to another room*\n\n"+"Booking: #%d\n"+"User: %d\n"+"New room: %d",
		booking.ID, booking.UserID, booking.RoomID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
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
