package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// SeedHandler наполняет хранилище стартовыми данными. Доступен только в development.
type SeedHandler struct {
	seed *service.SeedService
}

// NewSeedHandler создаёт новый хэндлер.
func NewSeedHandler(seed *service.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

// Seed обрабатывает POST /api/seed.
func (h *SeedHandler) Seed(c *gin.Context) {
	inserted, err := h.seed.SeedShowcase(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "не удалось наполнить хранилище")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "витрина наполнена",
		"inserted": inserted,
	})
}
