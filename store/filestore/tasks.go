package filestore

import (
	"context"
	"time"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

const tasksFile = "tasks"

func (s *Store) CreateTask(ctx context.Context, t *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := load[models.Task](s, tasksFile)
	if err != nil {
		return nil, err
	}
	tasks = append(tasks, *t)
	if err := save(s, tasksFile, tasks); err != nil {
		return nil, err
	}
	created := *t
	return &created, nil
}

func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := load[models.Task](s, tasksFile)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			t := tasks[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (s *Store) ListTasksByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := load[models.Task](s, tasksFile)
	if err != nil {
		return nil, err
	}
	var result []models.Task
	for _, t := range tasks {
		if t.ProjectID == projectID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, upd store.TaskUpdate) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := load[models.Task](s, tasksFile)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		t := &tasks[i]
		if upd.AreaID != nil {
			t.AreaID = *upd.AreaID
		}
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.AssigneeID != nil {
			t.AssigneeID = *upd.AssigneeID
		}
		if upd.Deadline != nil {
			t.Deadline = *upd.Deadline
		}
		if upd.Status != nil {
			t.Status = *upd.Status
			t.CompletedAt = upd.CompletedAt
		}
		if upd.SupportResources != nil {
			t.SupportResources = append([]string{}, (*upd.SupportResources)...)
		}
		if upd.DependsOn != nil {
			t.DependsOn = append([]string{}, (*upd.DependsOn)...)
		}
		if upd.Recurrence != nil {
			rec := *upd.Recurrence
			t.Recurrence = &rec
		}
		t.UpdatedAt = time.Now().UTC()
		if err := save(s, tasksFile, tasks); err != nil {
			return nil, err
		}
		updated := *t
		return &updated, nil
	}
	return nil, nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := load[models.Task](s, tasksFile)
	if err != nil {
		return err
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return save(s, tasksFile, kept)
}
