package services

import (
	"context"
	"testing"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
)

func TestCreateTaskDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.mustCreateProject(t, "Meetup")

	task, err := env.Tasks.CreateTask(ctx, &models.Task{
		ProjectID: project.ID,
		Title:     "Book the venue",
		DependsOn: []string{"0b786f05-ac0f-4c53-8ee8-0b2ee21ff24a"},
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Status != models.TaskPending {
		t.Fatalf("status should default to pending, got %q", task.Status)
	}
	if task.CompletedAt != nil {
		t.Fatalf("pending task must not carry completedAt")
	}
	// Dependency ids are stored as submitted, whether or not the target exists.
	if len(task.DependsOn) != 1 {
		t.Fatalf("dependsOn not preserved: %v", task.DependsOn)
	}
}

func TestCreateTaskRejectsUnknownProject(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Tasks.CreateTask(context.Background(), &models.Task{
		ProjectID: "missing",
		Title:     "Orphan",
	})
	if err == nil {
		t.Fatalf("expected unknown project rejection")
	}
}

func TestCreateTaskRejectsForeignArea(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	first := env.mustCreateProject(t, "First")
	second := env.mustCreateProject(t, "Second")

	area, err := env.Areas.CreateArea(ctx, first.ID, "Logistics", "", "", nil)
	if err != nil {
		t.Fatalf("CreateArea: %v", err)
	}

	_, err = env.Tasks.CreateTask(ctx, &models.Task{
		ProjectID: second.ID,
		AreaID:    area.ID,
		Title:     "Cross-project task",
	})
	if err == nil {
		t.Fatalf("expected rejection for area from another project")
	}
}

func TestUpdateTaskCompletedAtLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.mustCreateProject(t, "Meetup")

	task, err := env.Tasks.CreateTask(ctx, &models.Task{ProjectID: project.ID, Title: "Invites"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	completed := models.TaskCompleted
	updated, err := env.Tasks.UpdateTask(ctx, task.ID, store.TaskUpdate{Status: &completed})
	if err != nil {
		t.Fatalf("UpdateTask to completed: %v", err)
	}
	if updated.CompletedAt == nil {
		t.Fatalf("completedAt must be stamped when status becomes completed")
	}

	reopened := models.TaskInProgress
	updated, err = env.Tasks.UpdateTask(ctx, task.ID, store.TaskUpdate{Status: &reopened})
	if err != nil {
		t.Fatalf("UpdateTask to in_progress: %v", err)
	}
	if updated.CompletedAt != nil {
		t.Fatalf("completedAt must be cleared when the task reopens")
	}
}

func TestUpdateTaskRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.mustCreateProject(t, "Meetup")

	task, err := env.Tasks.CreateTask(ctx, &models.Task{ProjectID: project.ID, Title: "Invites"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	bad := models.TaskStatus("done")
	if _, err := env.Tasks.UpdateTask(ctx, task.ID, store.TaskUpdate{Status: &bad}); err == nil {
		t.Fatalf("expected unknown status rejection")
	}
}

func TestUpdateTaskMissingReturnsNil(t *testing.T) {
	env := newTestEnv(t)

	updated, err := env.Tasks.UpdateTask(context.Background(), "missing", store.TaskUpdate{})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated != nil {
		t.Fatalf("missing task should yield nil, got %+v", updated)
	}
}
