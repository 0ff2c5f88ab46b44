package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/mailer"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

func init() {
	logger.Init("fatal")
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func contactRouter(sender mailer.Sender, smtp config.SMTPConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewContactHandler(service.NewContactService(sender, smtp, "owner@example.com"))
	r.POST("/api/contact", handler.SubmitContact)
	return r
}

func postContact(r *gin.Engine, payload string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func smtpConfigured() config.SMTPConfig {
	return config.SMTPConfig{Host: "smtp.example.com", Port: 587, User: "noreply@example.com", Password: "secret"}
}

func TestContactHandler_Submit_Success(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mailer.Message")).Return("id", nil).Twice()

	r := contactRouter(sender, smtpConfigured())
	w := postContact(r, `{"name":"Jo","email":"jo@example.com","message":"hello there!"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ContactResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	sender := new(mockSender)

	r := contactRouter(sender, smtpConfigured())
	w := postContact(r, `{"name":"Jo","email":"not-an-email","message":"hello there"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "email")
	sender.AssertNotCalled(t, "Send")
}

func TestContactHandler_Submit_ShortMessage(t *testing.T) {
	sender := new(mockSender)

	r := contactRouter(sender, smtpConfigured())
	w := postContact(r, `{"name":"Jo","email":"jo@example.com","message":"short"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	sender.AssertNotCalled(t, "Send")
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	sender := new(mockSender)

	r := contactRouter(sender, smtpConfigured())
	w := postContact(r, `{"name":"Jo"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	sender.AssertNotCalled(t, "Send")
}

func TestContactHandler_Submit_MailNotConfigured(t *testing.T) {
	sender := new(mockSender)

	// Без учётных данных почты форма всё равно принимает заявку
	r := contactRouter(sender, config.SMTPConfig{})
	w := postContact(r, `{"name":"Jo","email":"jo@example.com","message":"hello there!"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ContactResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	sender.AssertNotCalled(t, "Send")
}

func TestContactHandler_Submit_DeliveryFailure(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.AnythingOfType("mailer.Message")).
		Return("", assert.AnError)

	r := contactRouter(sender, smtpConfigured())
	w := postContact(r, `{"name":"Jo","email":"jo@example.com","message":"hello there!"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
