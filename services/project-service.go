package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andyguzmaneth/ethcr-planner-sub000/logging"
	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

type ProjectService struct {
	Store store.Store
}

func NewProjectService(s store.Store) *ProjectService {
	return &ProjectService{Store: s}
}

// Slugify lowercases the name and collapses everything that is not a letter
// or digit into single dashes.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// uniqueSlug appends an incrementing numeric suffix until the slug is free.
func (s *ProjectService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "project"
	}

	slug := base
	for i := 1; ; i++ {
		existing, err := s.Store.GetProjectBySlug(ctx, slug)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// CreateProject creates a project with a unique slug. Type defaults to
// Custom and status to In Planning.
func (s *ProjectService) CreateProject(ctx context.Context, name string, projectType models.ProjectType, status models.ProjectStatus, description, startDate, endDate string, participantIDs []string) (*models.Project, error) {
	if projectType == "" {
		projectType = models.TypeCustom
	}
	if !models.ValidProjectType(projectType) {
		return nil, fmt.Errorf("Invalid project type: %s", projectType)
	}
	if status == "" {
		status = models.StatusInPlanning
	}
	if !models.ValidProjectStatus(status) {
		return nil, fmt.Errorf("Invalid project status: %s", status)
	}

	slug, err := s.uniqueSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:             uuid.New().String(),
		Name:           name,
		Slug:           slug,
		Type:           projectType,
		Status:         status,
		Description:    description,
		StartDate:      startDate,
		EndDate:        endDate,
		ParticipantIDs: participantIDs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.Store.CreateProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %v", err)
	}

	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Project %s (%s) created", created.ID, created.Slug)
	return created, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.Store.GetProject(ctx, id)
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.Store.ListProjects(ctx)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, upd store.ProjectUpdate) (*models.Project, error) {
	if upd.Type != nil && !models.ValidProjectType(*upd.Type) {
		return nil, fmt.Errorf("Invalid project type: %s", *upd.Type)
	}
	if upd.Status != nil && !models.ValidProjectStatus(*upd.Status) {
		return nil, fmt.Errorf("Invalid project status: %s", *upd.Status)
	}
	return s.Store.UpdateProject(ctx, id, upd)
}

// Join adds the user to the project's participant set.
func (s *ProjectService) Join(ctx context.Context, projectID, userID string) (*models.Project, error) {
	if err := s.Store.AddProjectParticipant(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.Store.GetProject(ctx, projectID)
}

// Leave removes the user from the project's participant set.
func (s *ProjectService) Leave(ctx context.Context, projectID, userID string) (*models.Project, error) {
	if err := s.Store.RemoveProjectParticipant(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.Store.GetProject(ctx, projectID)
}
