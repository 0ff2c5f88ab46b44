package service

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

// storageTimeout ограничивает обращения к базе, чтобы зависшее
// хранилище не держало запрос бесконечно.
const storageTimeout = 10 * time.Second

// ProjectStore — минимальный контракт хранилища проектов.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByProjectID(ctx context.Context, projectID int) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	HighestProjectID(ctx context.Context) (int, bool, error)
}

// ProjectService содержит бизнес-логику работы с проектами портфолио.
type ProjectService struct {
	repo ProjectStore
}

// NewProjectService создаёт сервис проектов.
func NewProjectService(repo ProjectStore) *ProjectService {
	return &ProjectService{repo: repo}
}

// ListProjects возвращает все проекты, отсортированные по возрастанию id.
func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeStorage, "не удалось получить проекты")
	}
	return projects, nil
}

// CreateProject создаёт новый проект. Предварительная проверка занятости
// идентификатора даёт дружелюбную ошибку, но единственная настоящая защита
// от дубликатов — уникальный индекс: 23505 от вставки маппится в тот же конфликт.
func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if _, err := s.repo.GetByProjectID(ctx, *req.ID); err == nil {
		return nil, apperror.New(apperror.ErrCodeConflict, "проект с таким id уже существует, укажите другой id")
	} else if !errors.Is(err, repository.ErrProjectNotFound) {
		return nil, apperror.Wrap(err, apperror.ErrCodeStorage, "не удалось проверить id проекта")
	}

	project := &models.Project{
		ProjectID:    *req.ID,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Period:       req.Period,
		Description:  req.Description,
		Image:        req.Image,
		Technologies: pq.StringArray(req.Technologies),
		Features:     pq.StringArray(req.Features),
		GitHub:       req.GitHub,
		Demo:         req.Demo,
		Icon:         req.Icon,
		Color:        req.Color,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		if errors.Is(err, repository.ErrProjectIDExists) {
			return nil, apperror.New(apperror.ErrCodeConflict, "проект с таким id уже существует, укажите другой id")
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeStorage, "не удалось сохранить проект")
	}

	return project, nil
}

// NextProjectID возвращает следующий свободный идентификатор:
// максимальный существующий + 1, либо 0 для пустого хранилища.
func (s *ProjectService) NextProjectID(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	highest, ok, err := s.repo.HighestProjectID(ctx)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeStorage, "не удалось вычислить следующий id")
	}
	if !ok {
		return 0, nil
	}
	return highest + 1, nil
}
