package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
)

// Templates persist the nested area/responsibility/task body as one JSON
// blob column; only id, name and project type are promoted to columns.

func (s *Store) CreateTemplate(ctx context.Context, t *models.ProjectTemplate) error {
	body, err := json.Marshal(t.Areas)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO project_templates (id, name, project_type, body) VALUES (?, ?, ?, ?)
	`, t.ID, t.Name, string(t.ProjectType), string(body))
	return err
}

func (s *Store) GetTemplate(ctx context.Context, id string) (*models.ProjectTemplate, error) {
	t := &models.ProjectTemplate{}
	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, project_type, body FROM project_templates WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.ProjectType, &body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(body), &t.Areas); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Store) ListTemplates(ctx context.Context) ([]models.ProjectTemplate, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, project_type, body FROM project_templates ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.ProjectTemplate
	for rows.Next() {
		var t models.ProjectTemplate
		var body string
		if err := rows.Scan(&t.ID, &t.Name, &t.ProjectType, &body); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(body), &t.Areas); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
