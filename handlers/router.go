package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/andyguzmaneth/ethcr-planner-sub000/middleware"
)

// NewRouter wires every endpoint. Register and login stay open; the rest of
// the API sits behind JWT auth.
func NewRouter(auth *AuthHandler, projects *ProjectHandler, areas *AreaHandler, tasks *TaskHandler, meetings *MeetingHandler, templates *TemplateHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/register", auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", auth.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTAuthMiddleware(auth.Service))

	api.HandleFunc("/auth/logout", auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", auth.Me).Methods(http.MethodGet)
	api.HandleFunc("/users", auth.ListUsers).Methods(http.MethodGet)

	api.HandleFunc("/projects", projects.ListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects", projects.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/init-la-itaba", templates.SeedLaItaba).Methods(http.MethodPost)
	api.HandleFunc("/projects/{projectId}", projects.GetProject).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}", projects.UpdateProject).Methods(http.MethodPut)
	api.HandleFunc("/projects/{projectId}/join", projects.Join).Methods(http.MethodPost)
	api.HandleFunc("/projects/{projectId}/join", projects.Leave).Methods(http.MethodDelete)
	api.HandleFunc("/projects/{projectId}/areas", projects.ListProjectAreas).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}/tasks", projects.ListProjectTasks).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}/meetings", projects.ListProjectMeetings).Methods(http.MethodGet)

	api.HandleFunc("/areas", areas.CreateArea).Methods(http.MethodPost)
	api.HandleFunc("/areas", areas.Reorder).Methods(http.MethodPatch)
	api.HandleFunc("/areas/{areaId}", areas.GetArea).Methods(http.MethodGet)
	api.HandleFunc("/areas/{areaId}", areas.UpdateArea).Methods(http.MethodPut)
	api.HandleFunc("/areas/{areaId}", areas.DeleteArea).Methods(http.MethodDelete)
	api.HandleFunc("/areas/{areaId}/responsibilities", areas.ListResponsibilities).Methods(http.MethodGet)
	api.HandleFunc("/areas/{areaId}/responsibilities", areas.CreateResponsibility).Methods(http.MethodPost)

	api.HandleFunc("/tasks", tasks.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{taskId}", tasks.GetTask).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskId}", tasks.UpdateTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{taskId}", tasks.DeleteTask).Methods(http.MethodDelete)

	api.HandleFunc("/meetings", meetings.CreateMeeting).Methods(http.MethodPost)
	api.HandleFunc("/meetings/{meetingId}", meetings.GetMeeting).Methods(http.MethodGet)
	api.HandleFunc("/meetings/{meetingId}", meetings.UpdateMeeting).Methods(http.MethodPut)
	api.HandleFunc("/meetings/{meetingId}", meetings.DeleteMeeting).Methods(http.MethodDelete)
	api.HandleFunc("/meetings/{meetingId}/note", meetings.GetMeetingNote).Methods(http.MethodGet)

	api.HandleFunc("/meeting-notes", meetings.CreateNote).Methods(http.MethodPost)
	api.HandleFunc("/meeting-notes/{noteId}", meetings.UpdateNote).Methods(http.MethodPut)

	api.HandleFunc("/templates", templates.ListTemplates).Methods(http.MethodGet)
	api.HandleFunc("/templates", templates.CreateTemplate).Methods(http.MethodPost)
	api.HandleFunc("/templates/{templateId}/apply", templates.Apply).Methods(http.MethodPost)

	return r
}
