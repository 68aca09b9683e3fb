package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

func (s *Store) CreateArea(ctx context.Context, a *models.Area) (*models.Area, error) {
	if a.ParticipantIDs == nil {
		a.ParticipantIDs = []string{}
	}
	if _, err := s.areas.InsertOne(ctx, a); err != nil {
		return nil, err
	}
	return s.GetArea(ctx, a.ID)
}

func (s *Store) GetArea(ctx context.Context, id string) (*models.Area, error) {
	var a models.Area
	err := s.areas.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListAreasByProject(ctx context.Context, projectID string) ([]models.Area, error) {
	cursor, err := s.areas.Find(ctx, bson.M{"projectId": projectID},
		options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}, {Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var areas []models.Area
	if err := cursor.All(ctx, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (s *Store) UpdateArea(ctx context.Context, id string, upd store.AreaUpdate) (*models.Area, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.LeadID != nil {
		set["leadId"] = *upd.LeadID
	}
	if upd.ParticipantIDs != nil {
		set["participantIds"] = *upd.ParticipantIDs
	}

	if len(set) > 0 {
		if _, err := s.areas.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}
	return s.GetArea(ctx, id)
}

func (s *Store) DeleteArea(ctx context.Context, id string) error {
	if _, err := s.areas.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	// Responsibilities hang off the area; tasks keep their (now dangling) areaId.
	_, err := s.responsibilities.DeleteMany(ctx, bson.M{"areaId": id})
	return err
}

func (s *Store) ReorderAreas(ctx context.Context, orders []store.AreaOrder) error {
	for _, o := range orders {
		if _, err := s.areas.UpdateOne(ctx, bson.M{"_id": o.ID},
			bson.M{"$set": bson.M{"displayOrder": o.Order}}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) CreateResponsibility(ctx context.Context, r *models.Responsibility) error {
	_, err := s.responsibilities.InsertOne(ctx, r)
	return err
}

func (s *Store) ListResponsibilitiesByArea(ctx context.Context, areaID string) ([]models.Responsibility, error) {
	cursor, err := s.responsibilities.Find(ctx, bson.M{"areaId": areaID},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Responsibility
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
