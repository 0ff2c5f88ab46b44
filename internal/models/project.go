package models

import (
	"time"

	"github.com/lib/pq"
)

// Project — запись портфолио. Поле ProjectID задаётся клиентом и служит
// стабильным ключом сортировки и поиска, в отличие от внутреннего ID записи.
type Project struct {
	ID           int64          `db:"id" json:"-"`
	ProjectID    int            `db:"project_id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Subtitle     string         `db:"subtitle" json:"subtitle"`
	Period       string         `db:"period" json:"period"`
	Description  string         `db:"description" json:"description"`
	Image        string         `db:"image" json:"image"`
	Technologies pq.StringArray `db:"technologies" json:"technologies"`
	Features     pq.StringArray `db:"features" json:"features"`
	GitHub       string         `db:"github" json:"github"`
	Demo         string         `db:"demo" json:"demo"`
	Icon         string         `db:"icon" json:"icon"`
	Color        string         `db:"color" json:"color"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
}
