package filestore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
)

func TestProjectsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	created, err := first.CreateProject(ctx, &models.Project{
		ID:        "p-1",
		Name:      "Meetup",
		Slug:      "meetup",
		Type:      models.TypeMeetup,
		Status:    models.StatusInPlanning,
		CreatedAt: time.Unix(100, 0).UTC(),
		UpdatedAt: time.Unix(100, 0).UTC(),
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if created.ParticipantIDs == nil {
		t.Fatalf("participant list should never be nil")
	}
	first.Close()

	second, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	loaded, err := second.GetProjectBySlug(ctx, "meetup")
	if err != nil {
		t.Fatalf("GetProjectBySlug: %v", err)
	}
	if loaded == nil || loaded.ID != "p-1" {
		t.Fatalf("project not persisted: %+v", loaded)
	}

	missing, err := second.GetProject(ctx, "nope")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if missing != nil {
		t.Fatalf("unknown id should yield nil, got %+v", missing)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	if err := st.CreateUser(context.Background(), &models.User{ID: "u-1", Name: "Ana"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "users.json")); err != nil {
		t.Fatalf("users file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "users.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestUserPasswordHashSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := first.CreateUser(ctx, &models.User{
		ID:           "u-1",
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$fakehash",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	first.Close()

	// The API model hides the hash from JSON; the on-disk record must still
	// carry it.
	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Contains(data, []byte(`"passwordHash"`)) {
		t.Fatalf("hash missing from disk: %s", data)
	}

	second, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	loaded, err := second.GetUserByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if loaded == nil || loaded.PasswordHash != "$2a$10$fakehash" {
		t.Fatalf("hash lost across reload: %+v", loaded)
	}

	users, err := second.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 1 || users[0].PasswordHash != "$2a$10$fakehash" {
		t.Fatalf("hash lost in list: %+v", users)
	}
}

func TestListAreasSortedByDisplayOrder(t *testing.T) {
	st, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()
	ctx := context.Background()

	for i, name := range []string{"C", "A", "B"} {
		if _, err := st.CreateArea(ctx, &models.Area{
			ID:           name,
			ProjectID:    "p-1",
			Name:         name,
			DisplayOrder: 2 - i,
		}); err != nil {
			t.Fatalf("CreateArea: %v", err)
		}
	}

	areas, err := st.ListAreasByProject(ctx, "p-1")
	if err != nil {
		t.Fatalf("ListAreasByProject: %v", err)
	}
	if len(areas) != 3 || areas[0].Name != "B" || areas[1].Name != "A" || areas[2].Name != "C" {
		t.Fatalf("areas not sorted by display order: %+v", areas)
	}
}
