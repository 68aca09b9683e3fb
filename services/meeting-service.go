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

type MeetingService struct {
	Store    store.Store
	Notifier *NotificationService
}

func NewMeetingService(s store.Store, notifier *NotificationService) *MeetingService {
	return &MeetingService{Store: s, Notifier: notifier}
}

func (s *MeetingService) CreateMeeting(ctx context.Context, m *models.Meeting) (*models.Meeting, error) {
	project, err := s.Store.GetProject(ctx, m.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("Invalid projectId: project does not exist")
	}

	m.ID = uuid.New().String()
	created, err := s.Store.CreateMeeting(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %v", err)
	}

	logging.Logger.Infof("Event ID: MEETING_CREATED, Description: Meeting %s scheduled in project %s", created.ID, created.ProjectID)
	s.Notifier.Notify("meeting.created", map[string]any{
		"meetingId": created.ID,
		"projectId": created.ProjectID,
		"title":     created.Title,
		"date":      created.Date,
		"time":      created.Time,
	})
	return created, nil
}

func (s *MeetingService) GetMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	return s.Store.GetMeeting(ctx, id)
}

func (s *MeetingService) ListMeetings(ctx context.Context, projectID string) ([]models.Meeting, error) {
	return s.Store.ListMeetingsByProject(ctx, projectID)
}

func (s *MeetingService) UpdateMeeting(ctx context.Context, id string, upd store.MeetingUpdate) (*models.Meeting, error) {
	return s.Store.UpdateMeeting(ctx, id, upd)
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, id string) error {
	if err := s.Store.DeleteMeeting(ctx, id); err != nil {
		return err
	}
	logging.Logger.Infof("Event ID: MEETING_DELETED, Description: Meeting %s deleted", id)
	return nil
}

// CreateNote attaches the single note a meeting can carry. CreatedBy comes
// from the session.
func (s *MeetingService) CreateNote(ctx context.Context, meetingID, content, agenda, decisions string, actionItems []string, createdBy string) (*models.MeetingNote, error) {
	existing, err := s.Store.GetMeetingNoteByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("Invalid request: meeting already has a note")
	}

	now := time.Now().UTC()
	note := &models.MeetingNote{
		ID:          uuid.New().String(),
		MeetingID:   meetingID,
		Content:     content,
		Agenda:      agenda,
		Decisions:   decisions,
		ActionItems: actionItems,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.CreateMeetingNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *MeetingService) GetNote(ctx context.Context, id string) (*models.MeetingNote, error) {
	return s.Store.GetMeetingNote(ctx, id)
}

func (s *MeetingService) GetNoteByMeeting(ctx context.Context, meetingID string) (*models.MeetingNote, error) {
	return s.Store.GetMeetingNoteByMeeting(ctx, meetingID)
}

func (s *MeetingService) UpdateNote(ctx context.Context, id string, upd store.NoteUpdate) (*models.MeetingNote, error) {
	return s.Store.UpdateMeetingNote(ctx, id, upd)
}
