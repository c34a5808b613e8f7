package reporter

import (
	"fmt"
	"html"
	"net/http"

	"go-internship-automation/internal/campaign"
	"go-internship-automation/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *zap.Logger
}

func NewTelegramReporter(cfg config.Telegram, log *zap.Logger) (*TelegramReporter, error) {
	return newTelegramReporter(cfg, tgbotapi.APIEndpoint, &http.Client{}, log)
}

// newTelegramReporter lets tests point the bot at a local endpoint of the
// form "http://host/bot%s/%s".
func newTelegramReporter(cfg config.Telegram, endpoint string, client *http.Client, log *zap.Logger) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.ChatID,
		log:    log,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		t.log.Warn("⚠️ telegram send failed", zap.Error(err))
		return err
	}
	return nil
}

func (t *TelegramReporter) SendSummary(sum campaign.Summary) error {
	text := fmt.Sprintf(
		"📊 <b>Internship campaign finished</b>\n"+
			"✅ Submitted: %d/%d\n"+
			"📋 Attempted: %d\n"+
			"⚠️ Failed: %d\n"+
			"🆔 <code>%s</code>",
		sum.Submitted, sum.Max,
		sum.Attempted,
		sum.Failed,
		html.EscapeString(sum.RunID),
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Internship bot error</b>:\n%s", html.EscapeString(errReq.Error()))
	return t.SendMessage(text)
}
