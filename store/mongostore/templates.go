package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
)

func (s *Store) CreateTemplate(ctx context.Context, t *models.ProjectTemplate) error {
	_, err := s.templates.InsertOne(ctx, t)
	return err
}

func (s *Store) GetTemplate(ctx context.Context, id string) (*models.ProjectTemplate, error) {
	var t models.ProjectTemplate
	err := s.templates.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTemplates(ctx context.Context) ([]models.ProjectTemplate, error) {
	cursor, err := s.templates.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []models.ProjectTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}
