package services

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andyguzmaneth/ethcr-planner-sub000/logging"
	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

//go:embed seed/la_itaba.json
var laItabaTemplate []byte

// TemplateService stores project templates and expands them into full
// projects with areas, responsibilities and tasks.
type TemplateService struct {
	Store    store.Store
	Projects *ProjectService
	Tasks    *TaskService
	Users    *UserService
}

func NewTemplateService(s store.Store, projects *ProjectService, tasks *TaskService, users *UserService) *TemplateService {
	return &TemplateService{Store: s, Projects: projects, Tasks: tasks, Users: users}
}

func (s *TemplateService) CreateTemplate(ctx context.Context, name string, projectType models.ProjectType, areas []models.TemplateArea) (*models.ProjectTemplate, error) {
	if projectType == "" {
		projectType = models.TypeCustom
	}
	if !models.ValidProjectType(projectType) {
		return nil, fmt.Errorf("Invalid project type: %s", projectType)
	}

	tpl := &models.ProjectTemplate{
		ID:          uuid.New().String(),
		Name:        name,
		ProjectType: projectType,
		Areas:       areas,
	}
	if err := s.Store.CreateTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, id string) (*models.ProjectTemplate, error) {
	return s.Store.GetTemplate(ctx, id)
}

func (s *TemplateService) ListTemplates(ctx context.Context) ([]models.ProjectTemplate, error) {
	return s.Store.ListTemplates(ctx)
}

// statusFromEstado maps a template task state label onto a task status.
func statusFromEstado(estado string) models.TaskStatus {
	switch estado {
	case "Done":
		return models.TaskCompleted
	case "In Progress":
		return models.TaskInProgress
	default:
		return models.TaskPending
	}
}

// Expand creates a fresh project from the template: one area per template
// area (first team member as lead, the rest as participants), its
// responsibilities, and one task per template task. There is no rollback; a
// failure partway leaves whatever was already created.
func (s *TemplateService) Expand(ctx context.Context, tpl *models.ProjectTemplate, projectName string) (*models.Project, error) {
	if projectName == "" {
		projectName = tpl.Name
	}

	project, err := s.Projects.CreateProject(ctx, projectName, tpl.ProjectType, models.StatusInPlanning, "", "", "", nil)
	if err != nil {
		return nil, err
	}

	for i, tplArea := range tpl.Areas {
		leadID := ""
		var participantIDs []string
		for j, member := range tplArea.TeamMembers {
			user, err := s.Users.ResolveMember(ctx, member)
			if err != nil {
				return nil, err
			}
			if j == 0 {
				leadID = user.ID
			} else {
				participantIDs = append(participantIDs, user.ID)
			}
		}

		area, err := s.Store.CreateArea(ctx, &models.Area{
			ID:             uuid.New().String(),
			ProjectID:      project.ID,
			Name:           tplArea.Name,
			Description:    tplArea.Description,
			LeadID:         leadID,
			ParticipantIDs: participantIDs,
			DisplayOrder:   i,
			CreatedAt:      time.Now().UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create area %q: %v", tplArea.Name, err)
		}

		for _, tplResp := range tplArea.Responsibilities {
			resp := &models.Responsibility{
				ID:     uuid.New().String(),
				AreaID: area.ID,
				Name:   tplResp.Name,
			}
			if err := s.Store.CreateResponsibility(ctx, resp); err != nil {
				return nil, fmt.Errorf("failed to create responsibility %q: %v", tplResp.Name, err)
			}

			for _, tplTask := range tplResp.Tasks {
				description := tplTask.Description
				if tplTask.Notes != "" {
					if description != "" {
						description += "\n\n" + tplTask.Notes
					} else {
						description = tplTask.Notes
					}
				}

				_, err := s.Tasks.CreateTask(ctx, &models.Task{
					ProjectID:   project.ID,
					AreaID:      area.ID,
					Title:       tplTask.Title,
					Description: description,
					Status:      statusFromEstado(tplTask.Estado),
				})
				if err != nil {
					return nil, fmt.Errorf("failed to create task %q: %v", tplTask.Title, err)
				}
			}
		}
	}

	logging.Logger.Infof("Event ID: TEMPLATE_EXPANDED, Description: Template %q expanded into project %s", tpl.Name, project.ID)
	return s.Store.GetProject(ctx, project.ID)
}

// SeedLaItaba expands the bundled La Itaba template. It refuses to run when
// the project already exists.
func (s *TemplateService) SeedLaItaba(ctx context.Context) (*models.Project, error) {
	var tpl models.ProjectTemplate
	if err := json.Unmarshal(laItabaTemplate, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse bundled template: %v", err)
	}

	existing, err := s.Store.GetProjectBySlug(ctx, Slugify(tpl.Name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("Invalid request: %s project already exists", tpl.Name)
	}

	return s.Expand(ctx, &tpl, "")
}
