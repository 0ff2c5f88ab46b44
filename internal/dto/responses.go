package dto

import "time"

// ErrorResponse — стандартное тело ошибки.
type ErrorResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// ContactResponse — ответ контактной формы.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NextProjectIDResponse — ответ админки со следующим свободным идентификатором.
type NextProjectIDResponse struct {
	NextID int `json:"nextId"`
}

// HealthResponse — ответ health check.
type HealthResponse struct {
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// UploadImageResponse — ответ на загрузку изображения проекта.
type UploadImageResponse struct {
	Path string `json:"path"`
}
