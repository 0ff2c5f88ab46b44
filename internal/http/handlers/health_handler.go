package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
)

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler создаёт новый health handler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health обрабатывает GET /api/health.
// Всегда отвечает 200: состояние базы — это данные ответа, а не статус.
// Недоступное хранилище не делает сам сервис нездоровым.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "connected"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		database = "disconnected"
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Message:   "Portfolio API is running!",
		Database:  database,
		Timestamp: time.Now().UTC(),
	})
}

// Root обрабатывает GET / — liveness проверка для платформ деплоя.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "running",
		"message":   "Portfolio API is running!",
		"timestamp": time.Now().UTC(),
	})
}
