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

func (s *Store) CreateMeeting(ctx context.Context, m *models.Meeting) (*models.Meeting, error) {
	if m.AttendeeIDs == nil {
		m.AttendeeIDs = []string{}
	}
	if _, err := s.meetings.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return s.GetMeeting(ctx, m.ID)
}

func (s *Store) GetMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	var m models.Meeting
	err := s.meetings.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) ListMeetingsByProject(ctx context.Context, projectID string) ([]models.Meeting, error) {
	cursor, err := s.meetings.Find(ctx, bson.M{"projectId": projectID},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

func (s *Store) UpdateMeeting(ctx context.Context, id string, upd store.MeetingUpdate) (*models.Meeting, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Time != nil {
		set["time"] = *upd.Time
	}
	if upd.AttendeeIDs != nil {
		set["attendeeIds"] = *upd.AttendeeIDs
	}

	if len(set) > 0 {
		if _, err := s.meetings.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}
	return s.GetMeeting(ctx, id)
}

func (s *Store) DeleteMeeting(ctx context.Context, id string) error {
	if _, err := s.meetings.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	_, err := s.meetingNotes.DeleteMany(ctx, bson.M{"meetingId": id})
	return err
}

func (s *Store) CreateMeetingNote(ctx context.Context, n *models.MeetingNote) error {
	_, err := s.meetingNotes.InsertOne(ctx, n)
	return err
}

func (s *Store) GetMeetingNote(ctx context.Context, id string) (*models.MeetingNote, error) {
	return s.findNote(ctx, bson.M{"_id": id})
}

func (s *Store) GetMeetingNoteByMeeting(ctx context.Context, meetingID string) (*models.MeetingNote, error) {
	return s.findNote(ctx, bson.M{"meetingId": meetingID})
}

func (s *Store) UpdateMeetingNote(ctx context.Context, id string, upd store.NoteUpdate) (*models.MeetingNote, error) {
	set := bson.M{}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Agenda != nil {
		set["agenda"] = *upd.Agenda
	}
	if upd.Decisions != nil {
		set["decisions"] = *upd.Decisions
	}
	if upd.ActionItems != nil {
		set["actionItems"] = *upd.ActionItems
	}

	if len(set) > 0 {
		set["updatedAt"] = time.Now().UTC()
		if _, err := s.meetingNotes.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}
	return s.GetMeetingNote(ctx, id)
}

func (s *Store) findNote(ctx context.Context, filter bson.M) (*models.MeetingNote, error) {
	var n models.MeetingNote
	err := s.meetingNotes.FindOne(ctx, filter).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}
