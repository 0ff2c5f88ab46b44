package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ErrProjectNotFound возвращается, когда проект не найден.
var ErrProjectNotFound = errors.New("project not found")

// ErrProjectIDExists возвращается при попытке создать проект с занятым идентификатором.
var ErrProjectIDExists = errors.New("project id already exists")

// uniqueViolation — код ошибки PostgreSQL для нарушения уникального индекса.
const uniqueViolation = "23505"

// ProjectRepository отвечает за хранение проектов портфолио.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository создаёт экземпляр репозитория.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List возвращает все проекты, отсортированные по возрастанию project_id.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, project_id, title, subtitle, period, description, image,
		       technologies, features, github, demo, icon, color, created_at
		FROM projects
		ORDER BY project_id ASC
	`

	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("project repository: list %w", err)
	}

	return projects, nil
}

// GetByProjectID возвращает проект по внешнему идентификатору.
func (r *ProjectRepository) GetByProjectID(ctx context.Context, projectID int) (*models.Project, error) {
	query := `
		SELECT id, project_id, title, subtitle, period, description, image,
		       technologies, features, github, demo, icon, color, created_at
		FROM projects
		WHERE project_id = $1
	`

	var project models.Project
	if err := r.db.GetContext(ctx, &project, query, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("project repository: get by project id %w", err)
	}

	return &project, nil
}

// Create сохраняет новый проект. Уникальность project_id гарантирует
// индекс в базе, поэтому гонка между проверкой и вставкой закрыта.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (project_id, title, subtitle, period, description, image,
		                      technologies, features, github, demo, icon, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		project.ProjectID,
		project.Title,
		project.Subtitle,
		project.Period,
		project.Description,
		project.Image,
		pq.Array([]string(project.Technologies)),
		pq.Array([]string(project.Features)),
		project.GitHub,
		project.Demo,
		project.Icon,
		project.Color,
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return ErrProjectIDExists
		}
		return fmt.Errorf("project repository: insert %w", err)
	}

	return nil
}

// HighestProjectID возвращает максимальный project_id.
// Второе значение false означает, что проектов пока нет.
func (r *ProjectRepository) HighestProjectID(ctx context.Context) (int, bool, error) {
	var highest sql.NullInt64
	query := `SELECT MAX(project_id) FROM projects`

	if err := r.db.GetContext(ctx, &highest, query); err != nil {
		return 0, false, fmt.Errorf("project repository: highest project id %w", err)
	}

	if !highest.Valid {
		return 0, false, nil
	}

	return int(highest.Int64), true, nil
}
