package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

type mockProjectStore struct {
	mock.Mock
}

func (m *mockProjectStore) List(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *mockProjectStore) GetByProjectID(ctx context.Context, projectID int) (*models.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *mockProjectStore) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectStore) HighestProjectID(ctx context.Context) (int, bool, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func validCreateRequest(id int) dto.CreateProjectRequest {
	return dto.CreateProjectRequest{
		ID:           &id,
		Title:        "G-Mart",
		Subtitle:     "React Based E-Commerce Platform",
		Period:       "2024 - Present",
		Description:  "A full-stack e-commerce platform.",
		Image:        "/project-gmart.svg",
		Technologies: []string{"React", "Node.js"},
		Features:     []string{"Shopping Cart"},
		GitHub:       "https://github.com/example",
		Demo:         "#",
		Icon:         "FaShoppingCart",
		Color:        "from-blue-500 to-cyan-500",
	}
}

func TestProjectService_CreateProject_Success(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	store.On("GetByProjectID", mock.Anything, 4).Return(nil, repository.ErrProjectNotFound)
	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Project")).Return(nil)

	project, err := svc.CreateProject(ctx, validCreateRequest(4))

	assert.NoError(t, err)
	assert.NotNil(t, project)
	assert.Equal(t, 4, project.ProjectID)
	assert.Equal(t, "G-Mart", project.Title)
	store.AssertExpectations(t)
}

func TestProjectService_CreateProject_DuplicateID(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	existing := &models.Project{ProjectID: 4}
	store.On("GetByProjectID", mock.Anything, 4).Return(existing, nil)

	_, err := svc.CreateProject(ctx, validCreateRequest(4))

	assert.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	store.AssertNotCalled(t, "Create")
}

func TestProjectService_CreateProject_DuplicateIDRace(t *testing.T) {
	// Пре-чек не увидел дубликата, но вставка упёрлась в уникальный индекс.
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	store.On("GetByProjectID", mock.Anything, 4).Return(nil, repository.ErrProjectNotFound)
	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Project")).Return(repository.ErrProjectIDExists)

	_, err := svc.CreateProject(ctx, validCreateRequest(4))

	assert.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestProjectService_CreateProject_StorageError(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	store.On("GetByProjectID", mock.Anything, 4).Return(nil, errors.New("connection refused"))

	_, err := svc.CreateProject(ctx, validCreateRequest(4))

	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ErrCodeStorage, appErr.Code)
}

func TestProjectService_NextProjectID_Sequence(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	store.On("HighestProjectID", mock.Anything).Return(3, true, nil)

	next, err := svc.NextProjectID(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 4, next)
}

func TestProjectService_NextProjectID_EmptyStore(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	store.On("HighestProjectID", mock.Anything).Return(0, false, nil)

	next, err := svc.NextProjectID(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestProjectService_ListProjects_StorageError(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store)
	ctx := context.Background()

	store.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.ListProjects(ctx)

	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ErrCodeStorage, appErr.Code)
}
