package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

// Разрешённые расширения файлов
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// MediaHandler управляет загрузкой изображений проектов.
type MediaHandler struct {
	storage *storage.ImageStorage
}

// NewMediaHandler создаёт новый хэндлер.
func NewMediaHandler(storage *storage.ImageStorage) *MediaHandler {
	return &MediaHandler{storage: storage}
}

// UploadImage обрабатывает POST /api/admin/projects/image.
// Возвращённый путь подставляется в поле image создаваемого проекта.
func (h *MediaHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		common.RespondBadRequest(c, "поле file обязательно")
		return
	}

	if file.Size == 0 {
		common.RespondBadRequest(c, "файл не может быть пустым")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		common.RespondBadRequest(c, fmt.Sprintf("неподдерживаемый формат файла. Разрешены: %s", strings.Join(extensionList(), ", ")))
		return
	}

	src, err := file.Open()
	if err != nil {
		common.RespondInternalError(c, "не удалось прочитать файл")
		return
	}
	defer src.Close()

	// Сверяем магические байты с расширением. SVG — текстовый формат,
	// filetype его не распознаёт, поэтому пропускаем проверку.
	if ext != ".svg" {
		buffer := make([]byte, 512)
		n, err := src.Read(buffer)
		if err != nil && n == 0 {
			common.RespondInternalError(c, "не удалось прочитать файл")
			return
		}

		kind, _ := filetype.Match(buffer[:n])
		if kind == filetype.Unknown || !strings.HasPrefix(kind.MIME.Value, "image/") {
			common.RespondBadRequest(c, "содержимое файла не похоже на изображение")
			return
		}

		if _, err := src.Seek(0, 0); err != nil {
			common.RespondInternalError(c, "не удалось прочитать файл")
			return
		}
	}

	fileName, _, err := h.storage.Save(c.Request.Context(), file.Filename, src)
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, dto.UploadImageResponse{
		Path: "/media/" + fileName,
	})
}

// extensionList возвращает отсортированный список разрешённых расширений.
func extensionList() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
