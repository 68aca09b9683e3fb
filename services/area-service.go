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

type AreaService struct {
	Store store.Store
}

func NewAreaService(s store.Store) *AreaService {
	return &AreaService{Store: s}
}

// CreateArea appends the area at the end of the project's display order.
func (s *AreaService) CreateArea(ctx context.Context, projectID, name, description, leadID string, participantIDs []string) (*models.Area, error) {
	project, err := s.Store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("Invalid projectId: project does not exist")
	}

	existing, err := s.Store.ListAreasByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	order := 0
	for _, a := range existing {
		if a.DisplayOrder >= order {
			order = a.DisplayOrder + 1
		}
	}

	area := &models.Area{
		ID:             uuid.New().String(),
		ProjectID:      projectID,
		Name:           name,
		Description:    description,
		LeadID:         leadID,
		ParticipantIDs: participantIDs,
		DisplayOrder:   order,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.Store.CreateArea(ctx, area)
	if err != nil {
		return nil, fmt.Errorf("failed to create area: %v", err)
	}

	logging.Logger.Infof("Event ID: AREA_CREATED, Description: Area %s created in project %s", created.ID, projectID)
	return created, nil
}

func (s *AreaService) GetArea(ctx context.Context, id string) (*models.Area, error) {
	return s.Store.GetArea(ctx, id)
}

func (s *AreaService) ListAreas(ctx context.Context, projectID string) ([]models.Area, error) {
	return s.Store.ListAreasByProject(ctx, projectID)
}

func (s *AreaService) UpdateArea(ctx context.Context, id string, upd store.AreaUpdate) (*models.Area, error) {
	return s.Store.UpdateArea(ctx, id, upd)
}

// DeleteArea removes the area and its responsibilities. Tasks keep their
// areaId; there is deliberately no cascade onto tasks.
func (s *AreaService) DeleteArea(ctx context.Context, id string) error {
	if err := s.Store.DeleteArea(ctx, id); err != nil {
		return err
	}
	logging.Logger.Infof("Event ID: AREA_DELETED, Description: Area %s deleted", id)
	return nil
}

// Reorder persists the submitted {id, order} pairs.
func (s *AreaService) Reorder(ctx context.Context, orders []store.AreaOrder) error {
	if len(orders) == 0 {
		return fmt.Errorf("Invalid reorder request: no entries")
	}
	return s.Store.ReorderAreas(ctx, orders)
}

// CreateResponsibility adds a task-grouping label under an area.
func (s *AreaService) CreateResponsibility(ctx context.Context, areaID, name, description string) (*models.Responsibility, error) {
	r := &models.Responsibility{
		ID:          uuid.New().String(),
		AreaID:      areaID,
		Name:        name,
		Description: description,
	}
	if err := s.Store.CreateResponsibility(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *AreaService) ListResponsibilities(ctx context.Context, areaID string) ([]models.Responsibility, error) {
	return s.Store.ListResponsibilitiesByArea(ctx, areaID)
}
