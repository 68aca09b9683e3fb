package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andyguzmaneth/ethcr-planner-sub000/logging"
	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

type TaskService struct {
	Store    store.Store
	Notifier *NotificationService
}

func NewTaskService(s store.Store, notifier *NotificationService) *TaskService {
	return &TaskService{Store: s, Notifier: notifier}
}

// checkArea verifies that an areaId, when set, belongs to the task's project.
func (s *TaskService) checkArea(ctx context.Context, projectID, areaID string) error {
	if areaID == "" {
		return nil
	}
	area, err := s.Store.GetArea(ctx, areaID)
	if err != nil {
		return err
	}
	if area == nil {
		return fmt.Errorf("Invalid areaId: area does not exist")
	}
	if area.ProjectID != projectID {
		return fmt.Errorf("Invalid areaId: area belongs to a different project")
	}
	return nil
}

// CreateTask creates a task with status defaulting to pending. DependsOn ids
// and the recurrence descriptor are stored as submitted; nothing checks
// dependency existence or cycles.
func (s *TaskService) CreateTask(ctx context.Context, t *models.Task) (*models.Task, error) {
	project, err := s.Store.GetProject(ctx, t.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("Invalid projectId: project does not exist")
	}

	if t.Status == "" {
		t.Status = models.TaskPending
	}
	if !models.ValidTaskStatus(t.Status) {
		return nil, fmt.Errorf("Invalid status: %s", t.Status)
	}
	if err := s.checkArea(ctx, t.ProjectID, t.AreaID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == models.TaskCompleted {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}

	created, err := s.Store.CreateTask(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %v", err)
	}

	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s created in project %s", created.ID, created.ProjectID)
	return created, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*models.Task, error) {
	return s.Store.GetTask(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, projectID string) ([]models.Task, error) {
	return s.Store.ListTasksByProject(ctx, projectID)
}

// UpdateTask applies a partial update. When the status changes to completed,
// completedAt is stamped; any other status clears it.
func (s *TaskService) UpdateTask(ctx context.Context, id string, upd store.TaskUpdate) (*models.Task, error) {
	existing, err := s.Store.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if upd.Status != nil {
		if !models.ValidTaskStatus(*upd.Status) {
			return nil, fmt.Errorf("Invalid status: %s", *upd.Status)
		}
		if *upd.Status == models.TaskCompleted {
			now := time.Now().UTC()
			upd.CompletedAt = &now
		} else {
			upd.CompletedAt = nil
		}
	}
	if upd.AreaID != nil {
		if err := s.checkArea(ctx, existing.ProjectID, *upd.AreaID); err != nil {
			return nil, err
		}
	}

	updated, err := s.Store.UpdateTask(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if updated != nil && upd.Status != nil && *upd.Status != existing.Status {
		s.Notifier.Notify("task.status_changed", map[string]any{
			"taskId":    updated.ID,
			"projectId": updated.ProjectID,
			"title":     updated.Title,
			"from":      existing.Status,
			"to":        updated.Status,
		})
	}
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.Store.DeleteTask(ctx, id); err != nil {
		return err
	}
	logging.Logger.Infof("Event ID: TASK_DELETED, Description: Task %s deleted", id)
	return nil
}
