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

func (s *Store) CreateTask(ctx context.Context, t *models.Task) (*models.Task, error) {
	if _, err := s.tasks.InsertOne(ctx, t); err != nil {
		return nil, err
	}
	return s.GetTask(ctx, t.ID)
}

func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	var t models.Task
	err := s.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTasksByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	cursor, err := s.tasks.Find(ctx, bson.M{"projectId": projectID},
		options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) UpdateTask(ctx context.Context, id string, upd store.TaskUpdate) (*models.Task, error) {
	set := bson.M{}
	unset := bson.M{}

	if upd.AreaID != nil {
		set["areaId"] = *upd.AreaID
	}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.AssigneeID != nil {
		set["assigneeId"] = *upd.AssigneeID
	}
	if upd.Deadline != nil {
		set["deadline"] = *upd.Deadline
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
		if upd.CompletedAt != nil {
			set["completedAt"] = upd.CompletedAt.UTC()
		} else {
			unset["completedAt"] = ""
		}
	}
	if upd.SupportResources != nil {
		set["supportResources"] = *upd.SupportResources
	}
	if upd.DependsOn != nil {
		set["dependsOn"] = *upd.DependsOn
	}
	if upd.Recurrence != nil {
		set["recurrence"] = upd.Recurrence
	}

	if len(set) > 0 || len(unset) > 0 {
		set["updatedAt"] = time.Now().UTC()
		update := bson.M{"$set": set}
		if len(unset) > 0 {
			update["$unset"] = unset
		}
		if _, err := s.tasks.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
			return nil, err
		}
	}
	return s.GetTask(ctx, id)
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	_, err := s.tasks.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
