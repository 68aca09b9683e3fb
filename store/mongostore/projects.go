package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

func (s *Store) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p.ParticipantIDs == nil {
		p.ParticipantIDs = []string{}
	}
	if _, err := s.projects.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return s.GetProject(ctx, p.ID)
}

func (s *Store) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.findProject(ctx, bson.M{"_id": id})
}

func (s *Store) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return s.findProject(ctx, bson.M{"slug": slug})
}

func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	cursor, err := s.projects.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, upd store.ProjectUpdate) (*models.Project, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.StartDate != nil {
		set["startDate"] = *upd.StartDate
	}
	if upd.EndDate != nil {
		set["endDate"] = *upd.EndDate
	}

	if len(set) > 0 {
		set["updatedAt"] = time.Now().UTC()
		if _, err := s.projects.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}
	return s.GetProject(ctx, id)
}

func (s *Store) AddProjectParticipant(ctx context.Context, projectID, userID string) error {
	_, err := s.projects.UpdateOne(ctx, bson.M{"_id": projectID},
		bson.M{"$addToSet": bson.M{"participantIds": userID}})
	return err
}

func (s *Store) RemoveProjectParticipant(ctx context.Context, projectID, userID string) error {
	_, err := s.projects.UpdateOne(ctx, bson.M{"_id": projectID},
		bson.M{"$pull": bson.M{"participantIds": userID}})
	return err
}

func (s *Store) findProject(ctx context.Context, filter bson.M) (*models.Project, error) {
	var p models.Project
	err := s.projects.FindOne(ctx, filter).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
