package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware обрабатывает CORS заголовки и preflight запросы.
// Разрешает origins из списка allowedOrigins: либо точное совпадение,
// либо шаблон вида "*.vercel.app" для preview-деплоев.
// Запросы без Origin (curl, мобильные клиенты) пропускаются как есть.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		if origin != "" {
			for _, allowedOrigin := range allowedOrigins {
				if originMatches(origin, allowedOrigin) {
					allowed = true
					break
				}
			}
		}

		// Устанавливаем заголовок только если origin разрешён
		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// originMatches сравнивает origin с записью списка.
// Шаблон "*.suffix" совпадает с любым поддоменом suffix, но не с самим suffix.
func originMatches(origin, allowedOrigin string) bool {
	if strings.HasPrefix(allowedOrigin, "*.") {
		return strings.HasSuffix(origin, allowedOrigin[1:])
	}
	return origin == allowedOrigin
}
