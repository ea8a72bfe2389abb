package notify

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Spok95/sport-inventory/internal/domain/analytics"
	"github.com/Spok95/sport-inventory/internal/report"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of tgbotapi.BotAPI used here.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Telegram struct {
	api    Sender
	chatID int64
	title  string
	log    *slog.Logger
}

func NewTelegram(api Sender, chatID int64, title string, log *slog.Logger) (*Telegram, error) {
	if chatID == 0 {
		return nil, errors.New("telegram.admin_chat_id must be set")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Telegram{api: api, chatID: chatID, title: title, log: log}, nil
}

// SendReport отправляет в админ-чат текстовую сводку и xlsx-файл отчёта.
func (t *Telegram) SendReport(s *analytics.Summary, now time.Time) error {
	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, report.Digest(t.title, s))); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := report.WriteWorkbook(buf, s); err != nil {
		return err
	}
	doc := tgbotapi.NewDocument(t.chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("inventory_%s.xlsx", now.Format("20060102_150405")),
		Bytes: buf.Bytes(),
	})
	doc.Caption = "Quarterly stock report"
	if _, err := t.api.Send(doc); err != nil {
		return fmt.Errorf("send workbook: %w", err)
	}

	t.log.Info("report sent", "chat_id", t.chatID, "items", len(s.Items))
	return nil
}
