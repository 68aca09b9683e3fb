package filestore

import (
	"context"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

const (
	areasFile            = "areas"
	responsibilitiesFile = "responsibilities"
)

func (s *Store) CreateArea(ctx context.Context, a *models.Area) (*models.Area, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	areas, err := load[models.Area](s, areasFile)
	if err != nil {
		return nil, err
	}
	if a.ParticipantIDs == nil {
		a.ParticipantIDs = []string{}
	}
	areas = append(areas, *a)
	if err := save(s, areasFile, areas); err != nil {
		return nil, err
	}
	created := *a
	return &created, nil
}

func (s *Store) GetArea(ctx context.Context, id string) (*models.Area, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	areas, err := load[models.Area](s, areasFile)
	if err != nil {
		return nil, err
	}
	for i := range areas {
		if areas[i].ID == id {
			a := areas[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *Store) ListAreasByProject(ctx context.Context, projectID string) ([]models.Area, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	areas, err := load[models.Area](s, areasFile)
	if err != nil {
		return nil, err
	}
	var result []models.Area
	for _, a := range areas {
		if a.ProjectID == projectID {
			result = append(result, a)
		}
	}
	sortAreas(result)
	return result, nil
}

func sortAreas(areas []models.Area) {
	for i := 1; i < len(areas); i++ {
		for j := i; j > 0 && areas[j].DisplayOrder < areas[j-1].DisplayOrder; j-- {
			areas[j], areas[j-1] = areas[j-1], areas[j]
		}
	}
}

func (s *Store) UpdateArea(ctx context.Context, id string, upd store.AreaUpdate) (*models.Area, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	areas, err := load[models.Area](s, areasFile)
	if err != nil {
		return nil, err
	}
	for i := range areas {
		if areas[i].ID != id {
			continue
		}
		a := &areas[i]
		if upd.Name != nil {
			a.Name = *upd.Name
		}
		if upd.Description != nil {
			a.Description = *upd.Description
		}
		if upd.LeadID != nil {
			a.LeadID = *upd.LeadID
		}
		if upd.ParticipantIDs != nil {
			a.ParticipantIDs = append([]string{}, (*upd.ParticipantIDs)...)
		}
		if err := save(s, areasFile, areas); err != nil {
			return nil, err
		}
		updated := *a
		return &updated, nil
	}
	return nil, nil
}

func (s *Store) DeleteArea(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	areas, err := load[models.Area](s, areasFile)
	if err != nil {
		return err
	}
	kept := areas[:0]
	for _, a := range areas {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if err := save(s, areasFile, kept); err != nil {
		return err
	}

	// Responsibilities hang off the area; tasks keep their (now dangling) areaId.
	list, err := load[models.Responsibility](s, responsibilitiesFile)
	if err != nil {
		return err
	}
	keptResp := list[:0]
	for _, r := range list {
		if r.AreaID != id {
			keptResp = append(keptResp, r)
		}
	}
	return save(s, responsibilitiesFile, keptResp)
}

func (s *Store) ReorderAreas(ctx context.Context, orders []store.AreaOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	areas, err := load[models.Area](s, areasFile)
	if err != nil {
		return err
	}
	byID := make(map[string]int, len(orders))
	for _, o := range orders {
		byID[o.ID] = o.Order
	}
	for i := range areas {
		if order, ok := byID[areas[i].ID]; ok {
			areas[i].DisplayOrder = order
		}
	}
	return save(s, areasFile, areas)
}

func (s *Store) CreateResponsibility(ctx context.Context, r *models.Responsibility) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := load[models.Responsibility](s, responsibilitiesFile)
	if err != nil {
		return err
	}
	list = append(list, *r)
	return save(s, responsibilitiesFile, list)
}

func (s *Store) ListResponsibilitiesByArea(ctx context.Context, areaID string) ([]models.Responsibility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := load[models.Responsibility](s, responsibilitiesFile)
	if err != nil {
		return nil, err
	}
	var result []models.Responsibility
	for _, r := range list {
		if r.AreaID == areaID {
			result = append(result, r)
		}
	}
	return result, nil
}
