package models

// ContactMessage — заявка из контактной формы. Не сохраняется:
// живёт ровно один запрос и используется для двух почтовых отправок.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
