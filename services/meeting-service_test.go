package services

import (
	"context"
	"testing"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
)

func TestCreateMeetingRejectsUnknownProject(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Meetings.CreateMeeting(context.Background(), &models.Meeting{
		ProjectID: "missing",
		Title:     "Kickoff",
		Date:      "2026-09-01",
		Time:      "18:00",
	})
	if err == nil {
		t.Fatalf("expected unknown project rejection")
	}
}

func TestMeetingCarriesSingleNote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.mustCreateProject(t, "Meetup")

	meeting, err := env.Meetings.CreateMeeting(ctx, &models.Meeting{
		ProjectID: project.ID,
		Title:     "Kickoff",
		Date:      "2026-09-01",
		Time:      "18:00",
	})
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}

	note, err := env.Meetings.CreateNote(ctx, meeting.ID, "Minutes", "Agenda", "", []string{"send recap"}, "user-1")
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if note.MeetingID != meeting.ID || note.CreatedBy != "user-1" {
		t.Fatalf("unexpected note: %+v", note)
	}

	if _, err := env.Meetings.CreateNote(ctx, meeting.ID, "Second", "", "", nil, "user-1"); err == nil {
		t.Fatalf("a meeting can only carry one note")
	}

	byMeeting, err := env.Meetings.GetNoteByMeeting(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("GetNoteByMeeting: %v", err)
	}
	if byMeeting == nil || byMeeting.ID != note.ID {
		t.Fatalf("note lookup by meeting failed: %+v", byMeeting)
	}
}

func TestDeleteMeetingRemovesNote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.mustCreateProject(t, "Meetup")

	meeting, err := env.Meetings.CreateMeeting(ctx, &models.Meeting{
		ProjectID: project.ID,
		Title:     "Retro",
		Date:      "2026-09-15",
		Time:      "17:00",
	})
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	note, err := env.Meetings.CreateNote(ctx, meeting.ID, "Minutes", "", "", nil, "user-1")
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	if err := env.Meetings.DeleteMeeting(ctx, meeting.ID); err != nil {
		t.Fatalf("DeleteMeeting: %v", err)
	}

	gone, err := env.Meetings.GetNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if gone != nil {
		t.Fatalf("note should be removed with its meeting")
	}
}
