package dto

// CreateProjectRequest — тело запроса на создание проекта.
// ID приходит указателем, чтобы отличать отсутствующее поле от нуля:
// нулевой идентификатор — валидное значение первой записи.
type CreateProjectRequest struct {
	ID           *int     `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	GitHub       string   `json:"github"`
	Demo         string   `json:"demo"`
	Icon         string   `json:"icon"`
	Color        string   `json:"color"`
}

// MissingFields возвращает имена обязательных полей, которых нет в запросе.
// Массивы считаются присутствующими, если ключ был передан, даже пустым.
func (r CreateProjectRequest) MissingFields() []string {
	var missing []string

	if r.ID == nil {
		missing = append(missing, "id")
	}

	stringFields := []struct {
		name  string
		value string
	}{
		{"title", r.Title},
		{"subtitle", r.Subtitle},
		{"period", r.Period},
		{"description", r.Description},
		{"image", r.Image},
		{"github", r.GitHub},
		{"demo", r.Demo},
		{"icon", r.Icon},
		{"color", r.Color},
	}
	for _, f := range stringFields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	if r.Technologies == nil {
		missing = append(missing, "technologies")
	}
	if r.Features == nil {
		missing = append(missing, "features")
	}

	return missing
}

// ContactRequest — тело запроса контактной формы.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
