package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobtrack/internal/config"
	"go-jobtrack/internal/models"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendFollowUp notifies about one application whose follow-up date is due.
func (t *TelegramReporter) SendFollowUp(app models.Application) error {
	text := fmt.Sprintf(
		"⏰ <b>Follow-up due</b>\n"+
			"💼 %s\n"+
			"🏢 %s\n"+
			"📌 Status: %s\n"+
			"📅 Follow up by: %s",
		app.PositionTitle,
		app.CompanyName,
		app.Status.Label(),
		app.FollowUpDate,
	)
	if app.JobURL != "" {
		text += fmt.Sprintf("\n🔗 <a href=\"%s\">Job posting</a>", app.JobURL)
	}
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>jobtrack Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
