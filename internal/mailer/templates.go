package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// notificationTemplate — письмо владельцу портфолио о новой заявке.
var notificationTemplate = template.Must(template.New("notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px;">
    <h2 style="color: #333; margin-top: 0;">Новая заявка с контактной формы</h2>

    <div style="background-color: white; padding: 20px; border-radius: 5px; margin: 15px 0;">
      <p style="margin: 10px 0;"><strong style="color: #0066cc;">От:</strong> {{.Name}}</p>
      <p style="margin: 10px 0;"><strong style="color: #0066cc;">Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    </div>

    <div style="background-color: #f9f9f9; padding: 15px; border-left: 4px solid #0066cc; margin: 15px 0; border-radius: 3px;">
      <strong style="color: #333;">Сообщение:</strong>
      <p style="color: #555; line-height: 1.6; margin-top: 10px; white-space: pre-wrap;">{{.Message}}</p>
    </div>

    <div style="margin-top: 20px; padding-top: 15px; border-top: 1px solid #eee; font-size: 12px; color: #999;">
      <p style="margin: 5px 0;">Письмо отправлено контактной формой портфолио.</p>
      <p style="margin: 5px 0; font-style: italic;">Чтобы ответить, пишите напрямую на {{.Email}}.</p>
    </div>
  </div>
</div>
`))

// acknowledgementTemplate — автоматический ответ отправителю.
// Кроме имени никаких данных отправителя в письмо не попадает.
var acknowledgementTemplate = template.Must(template.New("acknowledgement").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1 style="color: white; margin: 0;">Спасибо!</h1>
    <p style="color: rgba(255,255,255,0.9); margin: 5px 0 0 0;">Ваше сообщение получено</p>
  </div>

  <div style="background-color: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px;">
    <p style="color: #333; font-size: 16px; line-height: 1.6;">Здравствуйте, <strong>{{.Name}}</strong>!</p>

    <p style="color: #555; font-size: 14px; line-height: 1.6;">
      Спасибо за обращение. Я получил ваше сообщение и отвечу в ближайшее время.
    </p>

    <p style="color: #999; font-size: 12px; text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
      Это автоматический ответ, отвечать на него не нужно.
    </p>
  </div>
</div>
`))

// NotificationMessage собирает письмо-уведомление владельцу.
// Reply-To указывает на отправителя заявки, чтобы ответ уходил сразу ему.
func NotificationMessage(from, to string, contact models.ContactMessage) (Message, error) {
	var body strings.Builder
	if err := notificationTemplate.Execute(&body, contact); err != nil {
		return Message{}, fmt.Errorf("mailer: рендер уведомления %w", err)
	}

	return Message{
		From:     from,
		To:       to,
		Subject:  fmt.Sprintf("Новая заявка с контактной формы от %s", contact.Name),
		HTMLBody: body.String(),
		ReplyTo:  contact.Email,
	}, nil
}

// AcknowledgementMessage собирает письмо-подтверждение отправителю.
func AcknowledgementMessage(from string, contact models.ContactMessage) (Message, error) {
	var body strings.Builder
	if err := acknowledgementTemplate.Execute(&body, struct{ Name string }{Name: contact.Name}); err != nil {
		return Message{}, fmt.Errorf("mailer: рендер подтверждения %w", err)
	}

	return Message{
		From:     from,
		To:       contact.Email,
		Subject:  "Ваше сообщение получено",
		HTMLBody: body.String(),
	}, nil
}
