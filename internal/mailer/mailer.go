package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

// sendTimeout ограничивает одну отправку, чтобы зависший SMTP
// не держал запрос бесконечно.
const sendTimeout = 15 * time.Second

// Message — одно исходящее письмо.
type Message struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
	ReplyTo  string
}

// Sender отправляет письмо и возвращает идентификатор сообщения.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SMTPMailer отправляет письма через настроенный SMTP транспорт.
// Про провайдеров мейлер не знает: хост и порт приходят из конфигурации.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailer создаёт мейлер по конфигурации транспорта.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// Send отправляет письмо и возвращает идентификатор сообщения.
// gomail не принимает контекст, поэтому отправку гоним в горутине
// и соревнуемся с дедлайном.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) (string, error) {
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetBody("text/html", msg.HTMLBody)

	messageID := uuid.NewString()
	gm.SetHeader("Message-ID", fmt.Sprintf("<%s@portfolio>", messageID))

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(gm)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", apperror.Wrap(err, apperror.ErrCodeDelivery, "не удалось отправить письмо")
		}
		return messageID, nil
	case <-sendCtx.Done():
		return "", apperror.Wrap(sendCtx.Err(), apperror.ErrCodeDelivery, "таймаут отправки письма")
	}
}
