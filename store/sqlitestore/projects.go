package sqlitestore

import (
	"context"
	"database/sql"
	"time"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

const projectColumns = "id, name, slug, type, status, description, start_date, end_date, created_at, updated_at"

func (s *Store) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, slug, type, status, description, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Slug, string(p.Type), string(p.Status), p.Description, p.StartDate, p.EndDate, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, userID := range p.ParticipantIDs {
		if err := s.AddProjectParticipant(ctx, p.ID, userID); err != nil {
			return nil, err
		}
	}

	return s.GetProject(ctx, p.ID)
}

func (s *Store) scanProject(ctx context.Context, row *sql.Row) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Type, &p.Status, &p.Description, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	participants, err := s.projectParticipants(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.ParticipantIDs = participants
	return p, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.scanProject(ctx, s.db.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = ?", id))
}

func (s *Store) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return s.scanProject(ctx, s.db.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE slug = ?", slug))
}

func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+projectColumns+" FROM projects ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Type, &p.Status, &p.Description, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		participants, err := s.projectParticipants(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].ParticipantIDs = participants
	}
	return projects, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, upd store.ProjectUpdate) (*models.Project, error) {
	var sets []string
	var args []any

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, string(*upd.Type))
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*upd.Status))
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.StartDate != nil {
		sets = append(sets, "start_date = ?")
		args = append(args, *upd.StartDate)
	}
	if upd.EndDate != nil {
		sets = append(sets, "end_date = ?")
		args = append(args, *upd.EndDate)
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = ?")
		args = append(args, time.Now().UTC())
		args = append(args, id)
		if _, err := s.db.ExecContext(ctx, "UPDATE projects SET "+setClause(sets)+" WHERE id = ?", args...); err != nil {
			return nil, err
		}
	}

	return s.GetProject(ctx, id)
}

func (s *Store) AddProjectParticipant(ctx context.Context, projectID, userID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO project_participants (project_id, user_id) VALUES (?, ?)
		ON CONFLICT(project_id, user_id) DO NOTHING
	`, projectID, userID)
	return err
}

func (s *Store) RemoveProjectParticipant(ctx context.Context, projectID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM project_participants WHERE project_id = ? AND user_id = ?", projectID, userID)
	return err
}

func (s *Store) projectParticipants(ctx context.Context, projectID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM project_participants WHERE project_id = ? ORDER BY user_id", projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
