package sqlitestore

import (
	"context"
	"database/sql"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

const areaColumns = "id, project_id, name, description, lead_id, display_order, created_at"

func (s *Store) CreateArea(ctx context.Context, a *models.Area) (*models.Area, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO areas (id, project_id, name, description, lead_id, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.ProjectID, a.Name, a.Description, a.LeadID, a.DisplayOrder, a.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := s.replaceAreaParticipants(ctx, a.ID, a.ParticipantIDs); err != nil {
		return nil, err
	}

	return s.GetArea(ctx, a.ID)
}

func (s *Store) GetArea(ctx context.Context, id string) (*models.Area, error) {
	a := &models.Area{}
	err := s.db.QueryRowContext(ctx, "SELECT "+areaColumns+" FROM areas WHERE id = ?", id).
		Scan(&a.ID, &a.ProjectID, &a.Name, &a.Description, &a.LeadID, &a.DisplayOrder, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	participants, err := s.areaParticipants(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.ParticipantIDs = participants
	return a, nil
}

func (s *Store) ListAreasByProject(ctx context.Context, projectID string) ([]models.Area, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+areaColumns+" FROM areas WHERE project_id = ? ORDER BY display_order, created_at", projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []models.Area
	for rows.Next() {
		var a models.Area
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Name, &a.Description, &a.LeadID, &a.DisplayOrder, &a.CreatedAt); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range areas {
		participants, err := s.areaParticipants(ctx, areas[i].ID)
		if err != nil {
			return nil, err
		}
		areas[i].ParticipantIDs = participants
	}
	return areas, nil
}

func (s *Store) UpdateArea(ctx context.Context, id string, upd store.AreaUpdate) (*models.Area, error) {
	var sets []string
	var args []any

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.LeadID != nil {
		sets = append(sets, "lead_id = ?")
		args = append(args, *upd.LeadID)
	}

	if len(sets) > 0 {
		args = append(args, id)
		if _, err := s.db.ExecContext(ctx, "UPDATE areas SET "+setClause(sets)+" WHERE id = ?", args...); err != nil {
			return nil, err
		}
	}

	if upd.ParticipantIDs != nil {
		if err := s.replaceAreaParticipants(ctx, id, *upd.ParticipantIDs); err != nil {
			return nil, err
		}
	}

	return s.GetArea(ctx, id)
}

func (s *Store) DeleteArea(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM areas WHERE id = ?", id)
	return err
}

// ReorderAreas writes the submitted order values inside one transaction so a
// failed reorder leaves the previous sequence intact.
func (s *Store) ReorderAreas(ctx context.Context, orders []store.AreaOrder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if _, err := tx.ExecContext(ctx, "UPDATE areas SET display_order = ? WHERE id = ?", o.Order, o.ID); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// replaceAreaParticipants swaps the whole participant set transactionally.
func (s *Store) replaceAreaParticipants(ctx context.Context, areaID string, userIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM area_participants WHERE area_id = ?", areaID); err != nil {
		tx.Rollback()
		return err
	}
	for _, userID := range userIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO area_participants (area_id, user_id) VALUES (?, ?) ON CONFLICT(area_id, user_id) DO NOTHING",
			areaID, userID); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) areaParticipants(ctx context.Context, areaID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM area_participants WHERE area_id = ? ORDER BY user_id", areaID)
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

func (s *Store) CreateResponsibility(ctx context.Context, r *models.Responsibility) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO responsibilities (id, area_id, name, description) VALUES (?, ?, ?, ?)
	`, r.ID, r.AreaID, r.Name, r.Description)
	return err
}

func (s *Store) ListResponsibilitiesByArea(ctx context.Context, areaID string) ([]models.Responsibility, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, area_id, name, description FROM responsibilities WHERE area_id = ? ORDER BY name", areaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Responsibility
	for rows.Next() {
		var r models.Responsibility
		if err := rows.Scan(&r.ID, &r.AreaID, &r.Name, &r.Description); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}
