package sqlitestore

import (
	"context"
	"database/sql"
	"time"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

const taskColumns = `id, project_id, area_id, title, description, assignee_id, deadline, status,
	support_resources, recurrence_frequency, recurrence_interval, recurrence_end_date,
	completed_at, created_at, updated_at`

func (s *Store) CreateTask(ctx context.Context, t *models.Task) (*models.Task, error) {
	var freq, endDate string
	var interval int
	if t.Recurrence != nil {
		freq = t.Recurrence.Frequency
		interval = t.Recurrence.Interval
		endDate = t.Recurrence.EndDate
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, project_id, area_id, title, description, assignee_id, deadline, status,
			support_resources, recurrence_frequency, recurrence_interval, recurrence_end_date,
			completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.ProjectID, t.AreaID, t.Title, t.Description, t.AssigneeID, t.Deadline, string(t.Status),
		encodeStrings(t.SupportResources), freq, interval, endDate,
		nullableTime(t.CompletedAt), t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := s.replaceTaskDependencies(ctx, t.ID, t.DependsOn); err != nil {
		return nil, err
	}

	return s.GetTask(ctx, t.ID)
}

func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)

	t := &models.Task{}
	var resources, freq, recEnd string
	var interval int
	var completedAt sql.NullTime
	err := row.Scan(&t.ID, &t.ProjectID, &t.AreaID, &t.Title, &t.Description, &t.AssigneeID, &t.Deadline,
		&t.Status, &resources, &freq, &interval, &recEnd, &completedAt, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t.SupportResources = decodeStrings(resources)
	if freq != "" {
		t.Recurrence = &models.Recurrence{Frequency: freq, Interval: interval, EndDate: recEnd}
	}
	if completedAt.Valid {
		at := completedAt.Time
		t.CompletedAt = &at
	}

	deps, err := s.taskDependencies(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.DependsOn = deps
	return t, nil
}

func (s *Store) ListTasksByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM tasks WHERE project_id = ? ORDER BY created_at", projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var tasks []models.Task
	for _, id := range ids {
		t, err := s.GetTask(ctx, id)
		if err != nil {
			return nil, err
		}
		if t != nil {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, upd store.TaskUpdate) (*models.Task, error) {
	var sets []string
	var args []any

	if upd.AreaID != nil {
		sets = append(sets, "area_id = ?")
		args = append(args, *upd.AreaID)
	}
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.AssigneeID != nil {
		sets = append(sets, "assignee_id = ?")
		args = append(args, *upd.AssigneeID)
	}
	if upd.Deadline != nil {
		sets = append(sets, "deadline = ?")
		args = append(args, *upd.Deadline)
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?", "completed_at = ?")
		args = append(args, string(*upd.Status), nullableTime(upd.CompletedAt))
	}
	if upd.SupportResources != nil {
		sets = append(sets, "support_resources = ?")
		args = append(args, encodeStrings(*upd.SupportResources))
	}
	if upd.Recurrence != nil {
		sets = append(sets, "recurrence_frequency = ?", "recurrence_interval = ?", "recurrence_end_date = ?")
		args = append(args, upd.Recurrence.Frequency, upd.Recurrence.Interval, upd.Recurrence.EndDate)
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = ?")
		args = append(args, time.Now().UTC())
		args = append(args, id)
		if _, err := s.db.ExecContext(ctx, "UPDATE tasks SET "+setClause(sets)+" WHERE id = ?", args...); err != nil {
			return nil, err
		}
	}

	if upd.DependsOn != nil {
		if err := s.replaceTaskDependencies(ctx, id, *upd.DependsOn); err != nil {
			return nil, err
		}
	}

	return s.GetTask(ctx, id)
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	return err
}

func (s *Store) replaceTaskDependencies(ctx context.Context, taskID string, dependsOn []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM task_dependencies WHERE task_id = ?", taskID); err != nil {
		tx.Rollback()
		return err
	}
	for _, depID := range dependsOn {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO task_dependencies (task_id, depends_on_id) VALUES (?, ?) ON CONFLICT(task_id, depends_on_id) DO NOTHING",
			taskID, depID); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) taskDependencies(ctx context.Context, taskID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT depends_on_id FROM task_dependencies WHERE task_id = ? ORDER BY depends_on_id", taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
