package filestore

import (
	"context"
	"time"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

const (
	meetingsFile = "meetings"
	notesFile    = "meeting_notes"
)

func (s *Store) CreateMeeting(ctx context.Context, m *models.Meeting) (*models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meetings, err := load[models.Meeting](s, meetingsFile)
	if err != nil {
		return nil, err
	}
	if m.AttendeeIDs == nil {
		m.AttendeeIDs = []string{}
	}
	meetings = append(meetings, *m)
	if err := save(s, meetingsFile, meetings); err != nil {
		return nil, err
	}
	created := *m
	return &created, nil
}

func (s *Store) GetMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meetings, err := load[models.Meeting](s, meetingsFile)
	if err != nil {
		return nil, err
	}
	for i := range meetings {
		if meetings[i].ID == id {
			m := meetings[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (s *Store) ListMeetingsByProject(ctx context.Context, projectID string) ([]models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meetings, err := load[models.Meeting](s, meetingsFile)
	if err != nil {
		return nil, err
	}
	var result []models.Meeting
	for _, m := range meetings {
		if m.ProjectID == projectID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (s *Store) UpdateMeeting(ctx context.Context, id string, upd store.MeetingUpdate) (*models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meetings, err := load[models.Meeting](s, meetingsFile)
	if err != nil {
		return nil, err
	}
	for i := range meetings {
		if meetings[i].ID != id {
			continue
		}
		m := &meetings[i]
		if upd.Title != nil {
			m.Title = *upd.Title
		}
		if upd.Date != nil {
			m.Date = *upd.Date
		}
		if upd.Time != nil {
			m.Time = *upd.Time
		}
		if upd.AttendeeIDs != nil {
			m.AttendeeIDs = append([]string{}, (*upd.AttendeeIDs)...)
		}
		if err := save(s, meetingsFile, meetings); err != nil {
			return nil, err
		}
		updated := *m
		return &updated, nil
	}
	return nil, nil
}

func (s *Store) DeleteMeeting(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meetings, err := load[models.Meeting](s, meetingsFile)
	if err != nil {
		return err
	}
	kept := meetings[:0]
	for _, m := range meetings {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if err := save(s, meetingsFile, kept); err != nil {
		return err
	}

	// The one-to-one note goes with its meeting.
	notes, err := load[models.MeetingNote](s, notesFile)
	if err != nil {
		return err
	}
	keptNotes := notes[:0]
	for _, n := range notes {
		if n.MeetingID != id {
			keptNotes = append(keptNotes, n)
		}
	}
	return save(s, notesFile, keptNotes)
}

func (s *Store) CreateMeetingNote(ctx context.Context, n *models.MeetingNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := load[models.MeetingNote](s, notesFile)
	if err != nil {
		return err
	}
	notes = append(notes, *n)
	return save(s, notesFile, notes)
}

func (s *Store) GetMeetingNote(ctx context.Context, id string) (*models.MeetingNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findNote(func(n models.MeetingNote) bool { return n.ID == id })
}

func (s *Store) GetMeetingNoteByMeeting(ctx context.Context, meetingID string) (*models.MeetingNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findNote(func(n models.MeetingNote) bool { return n.MeetingID == meetingID })
}

func (s *Store) UpdateMeetingNote(ctx context.Context, id string, upd store.NoteUpdate) (*models.MeetingNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := load[models.MeetingNote](s, notesFile)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		n := &notes[i]
		if upd.Content != nil {
			n.Content = *upd.Content
		}
		if upd.Agenda != nil {
			n.Agenda = *upd.Agenda
		}
		if upd.Decisions != nil {
			n.Decisions = *upd.Decisions
		}
		if upd.ActionItems != nil {
			n.ActionItems = append([]string{}, (*upd.ActionItems)...)
		}
		n.UpdatedAt = time.Now().UTC()
		if err := save(s, notesFile, notes); err != nil {
			return nil, err
		}
		updated := *n
		return &updated, nil
	}
	return nil, nil
}

func (s *Store) findNote(match func(models.MeetingNote) bool) (*models.MeetingNote, error) {
	notes, err := load[models.MeetingNote](s, notesFile)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if match(notes[i]) {
			n := notes[i]
			return &n, nil
		}
	}
	return nil, nil
}
