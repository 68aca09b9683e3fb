package filestore

import (
	"context"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
)

const templatesFile = "templates"

func (s *Store) CreateTemplate(ctx context.Context, t *models.ProjectTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := load[models.ProjectTemplate](s, templatesFile)
	if err != nil {
		return err
	}
	templates = append(templates, *t)
	return save(s, templatesFile, templates)
}

func (s *Store) GetTemplate(ctx context.Context, id string) (*models.ProjectTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := load[models.ProjectTemplate](s, templatesFile)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].ID == id {
			t := templates[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (s *Store) ListTemplates(ctx context.Context) ([]models.ProjectTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load[models.ProjectTemplate](s, templatesFile)
}
