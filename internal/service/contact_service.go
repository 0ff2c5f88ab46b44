package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/mailer"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// ContactService обрабатывает заявки контактной формы: валидирует
// и отправляет два письма — уведомление владельцу и подтверждение отправителю.
type ContactService struct {
	sender    mailer.Sender
	smtp      config.SMTPConfig
	recipient string
}

// NewContactService создаёт сервис контактной формы.
func NewContactService(sender mailer.Sender, smtp config.SMTPConfig, recipient string) *ContactService {
	return &ContactService{
		sender:    sender,
		smtp:      smtp,
		recipient: recipient,
	}
}

// Submit валидирует заявку и запускает отправку писем.
// Если учётные данные почты не заданы, заявка логируется и считается принятой:
// доступность формы важнее гарантированной доставки.
func (s *ContactService) Submit(ctx context.Context, contact models.ContactMessage) error {
	if contact.Name == "" || contact.Email == "" || contact.Message == "" {
		return apperror.New(apperror.ErrCodeValidation, "все поля обязательны")
	}

	if err := validation.ValidateEmail(contact.Email); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, "укажите корректный email адрес")
	}

	if err := validation.ValidateLength("сообщение", contact.Message,
		validation.MinContactMessageLength, validation.MaxContactMessageLength); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	if !s.smtp.Configured() {
		logger.Log.WithFields(logrus.Fields{
			"name":  contact.Name,
			"email": contact.Email,
		}).Warn("почта не настроена, заявка только залогирована")
		logger.Log.Infof("заявка с контактной формы: %s <%s>: %s", contact.Name, contact.Email, contact.Message)
		return nil
	}

	notification, err := mailer.NotificationMessage(s.smtp.User, s.recipient, contact)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDelivery, "не удалось подготовить уведомление")
	}

	messageID, err := s.sender.Send(ctx, notification)
	if err != nil {
		return err
	}
	logger.Log.WithField("message_id", messageID).Info("уведомление о заявке отправлено")

	acknowledgement, err := mailer.AcknowledgementMessage(s.smtp.User, contact)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDelivery, "не удалось подготовить подтверждение")
	}

	messageID, err = s.sender.Send(ctx, acknowledgement)
	if err != nil {
		return err
	}
	logger.Log.WithField("message_id", messageID).Info("подтверждение отправителю отправлено")

	return nil
}
