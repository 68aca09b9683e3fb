package sqlitestore

import (
	"context"
	"database/sql"
	"time"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

func (s *Store) CreateMeeting(ctx context.Context, m *models.Meeting) (*models.Meeting, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meetings (id, project_id, title, date, time) VALUES (?, ?, ?, ?, ?)
	`, m.ID, m.ProjectID, m.Title, m.Date, m.Time)
	if err != nil {
		return nil, err
	}

	if err := s.replaceMeetingAttendees(ctx, m.ID, m.AttendeeIDs); err != nil {
		return nil, err
	}

	return s.GetMeeting(ctx, m.ID)
}

func (s *Store) GetMeeting(ctx context.Context, id string) (*models.Meeting, error) {
	m := &models.Meeting{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, project_id, title, date, time FROM meetings WHERE id = ?", id).
		Scan(&m.ID, &m.ProjectID, &m.Title, &m.Date, &m.Time)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	attendees, err := s.meetingAttendees(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.AttendeeIDs = attendees
	return m, nil
}

func (s *Store) ListMeetingsByProject(ctx context.Context, projectID string) ([]models.Meeting, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, project_id, title, date, time FROM meetings WHERE project_id = ? ORDER BY date, time", projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []models.Meeting
	for rows.Next() {
		var m models.Meeting
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Date, &m.Time); err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range meetings {
		attendees, err := s.meetingAttendees(ctx, meetings[i].ID)
		if err != nil {
			return nil, err
		}
		meetings[i].AttendeeIDs = attendees
	}
	return meetings, nil
}

func (s *Store) UpdateMeeting(ctx context.Context, id string, upd store.MeetingUpdate) (*models.Meeting, error) {
	var sets []string
	var args []any

	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *upd.Date)
	}
	if upd.Time != nil {
		sets = append(sets, "time = ?")
		args = append(args, *upd.Time)
	}

	if len(sets) > 0 {
		args = append(args, id)
		if _, err := s.db.ExecContext(ctx, "UPDATE meetings SET "+setClause(sets)+" WHERE id = ?", args...); err != nil {
			return nil, err
		}
	}

	if upd.AttendeeIDs != nil {
		if err := s.replaceMeetingAttendees(ctx, id, *upd.AttendeeIDs); err != nil {
			return nil, err
		}
	}

	return s.GetMeeting(ctx, id)
}

func (s *Store) DeleteMeeting(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM meetings WHERE id = ?", id)
	return err
}

func (s *Store) replaceMeetingAttendees(ctx context.Context, meetingID string, userIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM meeting_attendees WHERE meeting_id = ?", meetingID); err != nil {
		tx.Rollback()
		return err
	}
	for _, userID := range userIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO meeting_attendees (meeting_id, user_id) VALUES (?, ?) ON CONFLICT(meeting_id, user_id) DO NOTHING",
			meetingID, userID); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) meetingAttendees(ctx context.Context, meetingID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM meeting_attendees WHERE meeting_id = ? ORDER BY user_id", meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const noteColumns = "id, meeting_id, content, agenda, decisions, action_items, created_by, created_at, updated_at"

func (s *Store) CreateMeetingNote(ctx context.Context, n *models.MeetingNote) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meeting_notes (id, meeting_id, content, agenda, decisions, action_items, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, n.ID, n.MeetingID, n.Content, n.Agenda, n.Decisions, encodeStrings(n.ActionItems), n.CreatedBy, n.CreatedAt, n.UpdatedAt)
	return err
}

func (s *Store) scanNote(row *sql.Row) (*models.MeetingNote, error) {
	n := &models.MeetingNote{}
	var items string
	err := row.Scan(&n.ID, &n.MeetingID, &n.Content, &n.Agenda, &n.Decisions, &items, &n.CreatedBy, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	n.ActionItems = decodeStrings(items)
	return n, nil
}

func (s *Store) GetMeetingNote(ctx context.Context, id string) (*models.MeetingNote, error) {
	return s.scanNote(s.db.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM meeting_notes WHERE id = ?", id))
}

func (s *Store) GetMeetingNoteByMeeting(ctx context.Context, meetingID string) (*models.MeetingNote, error) {
	return s.scanNote(s.db.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM meeting_notes WHERE meeting_id = ?", meetingID))
}

func (s *Store) UpdateMeetingNote(ctx context.Context, id string, upd store.NoteUpdate) (*models.MeetingNote, error) {
	var sets []string
	var args []any

	if upd.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *upd.Content)
	}
	if upd.Agenda != nil {
		sets = append(sets, "agenda = ?")
		args = append(args, *upd.Agenda)
	}
	if upd.Decisions != nil {
		sets = append(sets, "decisions = ?")
		args = append(args, *upd.Decisions)
	}
	if upd.ActionItems != nil {
		sets = append(sets, "action_items = ?")
		args = append(args, encodeStrings(*upd.ActionItems))
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = ?")
		args = append(args, time.Now().UTC())
		args = append(args, id)
		if _, err := s.db.ExecContext(ctx, "UPDATE meeting_notes SET "+setClause(sets)+" WHERE id = ?", args...); err != nil {
			return nil, err
		}
	}

	return s.GetMeetingNote(ctx, id)
}
