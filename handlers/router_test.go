package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/services"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store/filestore"
	"github.com/andyguzmaneth/ethcr-planner-sub000/utils"
)

type testAPI struct {
	handler http.Handler
	token   string
	userID  string
}

// newTestAPI stands up the full router over a throwaway file store and
// returns a logged-in session token.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	st, err := filestore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("filestore.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	notifier := services.NewNotificationService("", utils.NewHTTPClient())
	users := services.NewUserService(st)
	projects := services.NewProjectService(st)
	areas := services.NewAreaService(st)
	tasks := services.NewTaskService(st, notifier)
	meetings := services.NewMeetingService(st, notifier)
	templates := services.NewTemplateService(st, projects, tasks, users)

	router := NewRouter(
		NewAuthHandler(users),
		NewProjectHandler(projects, areas, tasks, meetings),
		NewAreaHandler(areas),
		NewTaskHandler(tasks),
		NewMeetingHandler(meetings),
		NewTemplateHandler(templates),
	)

	api := &testAPI{handler: router}

	res := api.do(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Ana Solis",
		"email":    "ana@example.com",
		"password": "supersecret",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("register: status %d, body %s", res.Code, res.Body.String())
	}

	res = api.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "ana@example.com",
		"password": "supersecret",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", res.Code, res.Body.String())
	}
	var login struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeBody(t, res, &login)
	api.token = login.Token
	api.userID = login.User.ID
	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	res := httptest.NewRecorder()
	a.handler.ServeHTTP(res, req)
	return res
}

func decodeBody(t *testing.T, res *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(res.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", res.Body.String(), err)
	}
}

func errorMessage(t *testing.T, res *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, res, &body)
	return body["error"]
}

func TestAuthRequired(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	res := httptest.NewRecorder()
	api.handler.ServeHTTP(res, req)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", res.Code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	api := newTestAPI(t)

	if res := api.do(t, http.MethodGet, "/api/auth/me", nil); res.Code != http.StatusOK {
		t.Fatalf("me before logout: status %d", res.Code)
	}
	if res := api.do(t, http.MethodPost, "/api/auth/logout", nil); res.Code != http.StatusOK {
		t.Fatalf("logout: status %d", res.Code)
	}
	if res := api.do(t, http.MethodGet, "/api/auth/me", nil); res.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout should be 401, got %d", res.Code)
	}
}

func TestProjectEndpoints(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPost, "/api/projects", map[string]any{
		"name": "ETH Meetup",
		"type": "Meetup",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("create project: status %d, body %s", res.Code, res.Body.String())
	}
	var project models.Project
	decodeBody(t, res, &project)
	if project.Slug != "eth-meetup" {
		t.Fatalf("unexpected slug %q", project.Slug)
	}

	res = api.do(t, http.MethodGet, "/api/projects/"+project.ID, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("get project: status %d", res.Code)
	}

	res = api.do(t, http.MethodPut, "/api/projects/"+project.ID, map[string]any{"status": "Active"})
	if res.Code != http.StatusOK {
		t.Fatalf("update project: status %d, body %s", res.Code, res.Body.String())
	}
	var updated models.Project
	decodeBody(t, res, &updated)
	if updated.Status != models.StatusActive {
		t.Fatalf("status not updated: %q", updated.Status)
	}

	res = api.do(t, http.MethodGet, "/api/projects/0b786f05-ac0f-4c53-8ee8-0b2ee21ff24a", nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("unknown project should be 404, got %d", res.Code)
	}
	if msg := errorMessage(t, res); msg != "Project not found" {
		t.Fatalf("unexpected error message %q", msg)
	}

	res = api.do(t, http.MethodPost, "/api/projects", map[string]any{
		"name":           "Bad Participants",
		"participantIds": []string{"nope"},
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("malformed participant id should be 400, got %d", res.Code)
	}
}

func TestProjectJoinLeave(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Meetup"})
	var project models.Project
	decodeBody(t, res, &project)

	res = api.do(t, http.MethodPost, "/api/projects/"+project.ID+"/join", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("join: status %d, body %s", res.Code, res.Body.String())
	}
	var joined models.Project
	decodeBody(t, res, &joined)
	if len(joined.ParticipantIDs) != 1 || joined.ParticipantIDs[0] != api.userID {
		t.Fatalf("session user not recorded as participant: %v", joined.ParticipantIDs)
	}

	res = api.do(t, http.MethodDelete, "/api/projects/"+project.ID+"/join", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("leave: status %d", res.Code)
	}
	var left models.Project
	decodeBody(t, res, &left)
	if len(left.ParticipantIDs) != 0 {
		t.Fatalf("participant still present: %v", left.ParticipantIDs)
	}
}

func TestTaskEndpoints(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Meetup"})
	var project models.Project
	decodeBody(t, res, &project)

	res = api.do(t, http.MethodPost, "/api/tasks", map[string]any{
		"projectId":        project.ID,
		"title":            "Book the venue",
		"supportResources": "maps link\n\ncontact sheet",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("create task: status %d, body %s", res.Code, res.Body.String())
	}
	var task models.Task
	decodeBody(t, res, &task)
	if task.Status != models.TaskPending {
		t.Fatalf("status should default to pending, got %q", task.Status)
	}
	if len(task.SupportResources) != 2 {
		t.Fatalf("support resources not parsed: %v", task.SupportResources)
	}

	res = api.do(t, http.MethodPost, "/api/tasks", map[string]any{
		"projectId": "not-a-uuid",
		"title":     "Orphan",
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("malformed projectId should be 400, got %d", res.Code)
	}

	res = api.do(t, http.MethodPut, "/api/tasks/"+task.ID, map[string]any{"status": "completed"})
	if res.Code != http.StatusOK {
		t.Fatalf("complete task: status %d, body %s", res.Code, res.Body.String())
	}
	var completed models.Task
	decodeBody(t, res, &completed)
	if completed.CompletedAt == nil {
		t.Fatalf("completedAt missing after completion")
	}

	res = api.do(t, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	if res.Code != http.StatusOK {
		t.Fatalf("delete task: status %d", res.Code)
	}
	res = api.do(t, http.MethodGet, "/api/tasks/"+task.ID, nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("deleted task should be 404, got %d", res.Code)
	}
}

func TestUpdateTaskAreaIDHandling(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Meetup"})
	var project models.Project
	decodeBody(t, res, &project)

	res = api.do(t, http.MethodPost, "/api/areas", map[string]any{
		"projectId": project.ID,
		"name":      "Logistics",
	})
	var area models.Area
	decodeBody(t, res, &area)

	res = api.do(t, http.MethodPost, "/api/tasks", map[string]any{
		"projectId": project.ID,
		"areaId":    area.ID,
		"title":     "Book the venue",
	})
	var task models.Task
	decodeBody(t, res, &task)
	if task.AreaID != area.ID {
		t.Fatalf("task not created in area: %+v", task)
	}

	// A malformed areaId is rejected and must not touch the stored value.
	res = api.do(t, http.MethodPut, "/api/tasks/"+task.ID, map[string]any{"areaId": "not-a-uuid"})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("malformed areaId should be 400, got %d, body %s", res.Code, res.Body.String())
	}
	res = api.do(t, http.MethodGet, "/api/tasks/"+task.ID, nil)
	var kept models.Task
	decodeBody(t, res, &kept)
	if kept.AreaID != area.ID {
		t.Fatalf("malformed areaId must not change the task, got %q", kept.AreaID)
	}

	// An explicit empty string still clears the area.
	res = api.do(t, http.MethodPut, "/api/tasks/"+task.ID, map[string]any{"areaId": ""})
	if res.Code != http.StatusOK {
		t.Fatalf("clearing area: status %d, body %s", res.Code, res.Body.String())
	}
	var cleared models.Task
	decodeBody(t, res, &cleared)
	if cleared.AreaID != "" {
		t.Fatalf("empty areaId should clear the area, got %q", cleared.AreaID)
	}

	res = api.do(t, http.MethodPut, "/api/tasks/"+task.ID, map[string]any{"assigneeId": "not-a-uuid"})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("malformed assigneeId should be 400, got %d", res.Code)
	}
}

func TestAreaEndpoints(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Meetup"})
	var project models.Project
	decodeBody(t, res, &project)

	res = api.do(t, http.MethodPost, "/api/areas", map[string]any{
		"projectId": project.ID,
		"name":      "Logistics",
		"leadId":    "not-a-uuid",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("create area: status %d, body %s", res.Code, res.Body.String())
	}
	var area models.Area
	decodeBody(t, res, &area)
	if area.LeadID != "" {
		t.Fatalf("malformed leadId should be dropped, got %q", area.LeadID)
	}

	res = api.do(t, http.MethodPost, "/api/areas", map[string]any{
		"projectId": project.ID,
		"name":      "Program",
	})
	var second models.Area
	decodeBody(t, res, &second)

	res = api.do(t, http.MethodPatch, "/api/areas", []map[string]any{
		{"id": area.ID, "order": 1},
		{"id": second.ID, "order": 0},
	})
	if res.Code != http.StatusOK {
		t.Fatalf("reorder: status %d, body %s", res.Code, res.Body.String())
	}

	res = api.do(t, http.MethodGet, "/api/projects/"+project.ID+"/areas", nil)
	var areas []models.Area
	decodeBody(t, res, &areas)
	if len(areas) != 2 || areas[0].ID != second.ID {
		t.Fatalf("reorder not applied: %+v", areas)
	}

	res = api.do(t, http.MethodDelete, "/api/areas/0b786f05-ac0f-4c53-8ee8-0b2ee21ff24a", nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("unknown area should be 404, got %d", res.Code)
	}
	if msg := errorMessage(t, res); msg != "Area not found" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestResponsibilityEndpoints(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Meetup"})
	var project models.Project
	decodeBody(t, res, &project)

	res = api.do(t, http.MethodPost, "/api/areas", map[string]any{
		"projectId": project.ID,
		"name":      "Logistics",
	})
	var area models.Area
	decodeBody(t, res, &area)

	res = api.do(t, http.MethodPost, "/api/areas/"+area.ID+"/responsibilities", map[string]any{
		"name": "Venue",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("create responsibility: status %d, body %s", res.Code, res.Body.String())
	}

	res = api.do(t, http.MethodGet, "/api/areas/"+area.ID+"/responsibilities", nil)
	var list []models.Responsibility
	decodeBody(t, res, &list)
	if len(list) != 1 || list[0].Name != "Venue" {
		t.Fatalf("unexpected responsibilities: %+v", list)
	}
}

func TestMeetingNoteEndpoints(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Meetup"})
	var project models.Project
	decodeBody(t, res, &project)

	res = api.do(t, http.MethodPost, "/api/meetings", map[string]any{
		"projectId": project.ID,
		"title":     "Kickoff",
		"date":      "2026-09-01",
		"time":      "18:00",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("create meeting: status %d, body %s", res.Code, res.Body.String())
	}
	var meeting models.Meeting
	decodeBody(t, res, &meeting)

	res = api.do(t, http.MethodGet, "/api/meetings/"+meeting.ID+"/note", nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("missing note should be 404, got %d", res.Code)
	}

	res = api.do(t, http.MethodPost, "/api/meeting-notes", map[string]any{
		"meetingId":   meeting.ID,
		"content":     "Minutes",
		"actionItems": []string{"send recap", ""},
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("create note: status %d, body %s", res.Code, res.Body.String())
	}
	var note models.MeetingNote
	decodeBody(t, res, &note)
	if note.CreatedBy != api.userID {
		t.Fatalf("createdBy should come from the session, got %q", note.CreatedBy)
	}
	if len(note.ActionItems) != 1 {
		t.Fatalf("action items not cleaned: %v", note.ActionItems)
	}

	res = api.do(t, http.MethodPost, "/api/meeting-notes", map[string]any{
		"meetingId": meeting.ID,
		"content":   "Second",
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("second note should be 400, got %d", res.Code)
	}

	res = api.do(t, http.MethodPut, "/api/meeting-notes/"+note.ID, map[string]any{
		"content": "Amended minutes",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("update note: status %d, body %s", res.Code, res.Body.String())
	}

	res = api.do(t, http.MethodGet, "/api/meetings/"+meeting.ID+"/note", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("get note: status %d", res.Code)
	}
	var fetched models.MeetingNote
	decodeBody(t, res, &fetched)
	if fetched.Content != "Amended minutes" {
		t.Fatalf("note content not updated: %q", fetched.Content)
	}
}

func TestTemplateApply(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPost, "/api/templates", map[string]any{
		"name":        "Community Meetup",
		"projectType": "Meetup",
		"areas": []map[string]any{
			{
				"name":        "Logistics",
				"teamMembers": []string{"Ana Solis"},
				"responsibilities": []map[string]any{
					{"name": "Venue", "tasks": []map[string]any{{"title": "Book the venue", "estado": "Done"}}},
				},
			},
		},
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("create template: status %d, body %s", res.Code, res.Body.String())
	}
	var tpl models.ProjectTemplate
	decodeBody(t, res, &tpl)

	res = api.do(t, http.MethodPost, "/api/templates/"+tpl.ID+"/apply", map[string]any{
		"projectName": "September Meetup",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("apply template: status %d, body %s", res.Code, res.Body.String())
	}
	var project models.Project
	decodeBody(t, res, &project)
	if project.Name != "September Meetup" {
		t.Fatalf("unexpected project name %q", project.Name)
	}

	res = api.do(t, http.MethodGet, "/api/projects/"+project.ID+"/tasks", nil)
	var tasks []models.Task
	decodeBody(t, res, &tasks)
	if len(tasks) != 1 || tasks[0].Status != models.TaskCompleted {
		t.Fatalf("template tasks not expanded: %+v", tasks)
	}

	res = api.do(t, http.MethodPost, "/api/templates/0b786f05-ac0f-4c53-8ee8-0b2ee21ff24a/apply", nil)
	if res.Code != http.StatusNotFound {
		t.Fatalf("unknown template should be 404, got %d", res.Code)
	}
}

func TestSeedLaItabaEndpoint(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(t, http.MethodPost, "/api/projects/init-la-itaba", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("seed: status %d, body %s", res.Code, res.Body.String())
	}
	var project models.Project
	decodeBody(t, res, &project)
	if project.Slug != "la-itaba" {
		t.Fatalf("unexpected slug %q", project.Slug)
	}

	res = api.do(t, http.MethodPost, "/api/projects/init-la-itaba", nil)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("second seed should be 400, got %d", res.Code)
	}
}
