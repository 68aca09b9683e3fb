package services

import (
	"context"
	"testing"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store/filestore"
	"github.com/andyguzmaneth/ethcr-planner-sub000/utils"
)

type testEnv struct {
	Store     store.Store
	Users     *UserService
	Projects  *ProjectService
	Areas     *AreaService
	Tasks     *TaskService
	Meetings  *MeetingService
	Templates *TemplateService
}

// newTestEnv wires the services over a throwaway file store. The notifier has
// no webhook URL, so notifications are a no-op.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := filestore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("filestore.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	notifier := NewNotificationService("", utils.NewHTTPClient())
	users := NewUserService(st)
	projects := NewProjectService(st)
	areas := NewAreaService(st)
	tasks := NewTaskService(st, notifier)
	meetings := NewMeetingService(st, notifier)
	templates := NewTemplateService(st, projects, tasks, users)

	return &testEnv{
		Store:     st,
		Users:     users,
		Projects:  projects,
		Areas:     areas,
		Tasks:     tasks,
		Meetings:  meetings,
		Templates: templates,
	}
}

func (e *testEnv) mustCreateProject(t *testing.T, name string) *models.Project {
	t.Helper()
	project, err := e.Projects.CreateProject(context.Background(), name, "", "", "", "", "", nil)
	if err != nil {
		t.Fatalf("CreateProject(%q): %v", name, err)
	}
	return project
}
