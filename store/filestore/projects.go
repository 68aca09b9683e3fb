package filestore

import (
	"context"
	"time"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

const projectsFile = "projects"

func (s *Store) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := load[models.Project](s, projectsFile)
	if err != nil {
		return nil, err
	}
	if p.ParticipantIDs == nil {
		p.ParticipantIDs = []string{}
	}
	projects = append(projects, *p)
	if err := save(s, projectsFile, projects); err != nil {
		return nil, err
	}
	created := *p
	return &created, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findProject(func(p models.Project) bool { return p.ID == id })
}

func (s *Store) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findProject(func(p models.Project) bool { return p.Slug == slug })
}

func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load[models.Project](s, projectsFile)
}

func (s *Store) UpdateProject(ctx context.Context, id string, upd store.ProjectUpdate) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := load[models.Project](s, projectsFile)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		p := &projects[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Type != nil {
			p.Type = *upd.Type
		}
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.StartDate != nil {
			p.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			p.EndDate = *upd.EndDate
		}
		p.UpdatedAt = time.Now().UTC()
		if err := save(s, projectsFile, projects); err != nil {
			return nil, err
		}
		updated := *p
		return &updated, nil
	}
	return nil, nil
}

func (s *Store) AddProjectParticipant(ctx context.Context, projectID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := load[models.Project](s, projectsFile)
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		for _, existing := range projects[i].ParticipantIDs {
			if existing == userID {
				return nil
			}
		}
		projects[i].ParticipantIDs = append(projects[i].ParticipantIDs, userID)
		return save(s, projectsFile, projects)
	}
	return nil
}

func (s *Store) RemoveProjectParticipant(ctx context.Context, projectID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := load[models.Project](s, projectsFile)
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		kept := projects[i].ParticipantIDs[:0]
		for _, existing := range projects[i].ParticipantIDs {
			if existing != userID {
				kept = append(kept, existing)
			}
		}
		projects[i].ParticipantIDs = kept
		return save(s, projectsFile, projects)
	}
	return nil
}

func (s *Store) findProject(match func(models.Project) bool) (*models.Project, error) {
	projects, err := load[models.Project](s, projectsFile)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if match(projects[i]) {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, nil
}
