package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/andyguzmaneth/ethcr-planner-sub000/middleware"
	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/services"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
	"github.com/andyguzmaneth/ethcr-planner-sub000/utils"
)

type ProjectHandler struct {
	Service  *services.ProjectService
	Areas    *services.AreaService
	Tasks    *services.TaskService
	Meetings *services.MeetingService
}

func NewProjectHandler(service *services.ProjectService, areas *services.AreaService, tasks *services.TaskService, meetings *services.MeetingService) *ProjectHandler {
	return &ProjectHandler{Service: service, Areas: areas, Tasks: tasks, Meetings: meetings}
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.ListProjects(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	respondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string   `json:"name"`
		Type           string   `json:"type"`
		Status         string   `json:"status"`
		Description    string   `json:"description"`
		StartDate      string   `json:"startDate"`
		EndDate        string   `json:"endDate"`
		ParticipantIDs []string `json:"participantIds"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	name, err := utils.ValidateRequiredString(req.Name, "name")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var participants []string
	for _, id := range req.ParticipantIDs {
		if utils.ValidateUUID(id) == "" {
			respondError(w, http.StatusBadRequest, "Invalid participant id")
			return
		}
		participants = append(participants, id)
	}

	project, err := h.Service.CreateProject(r.Context(), name,
		models.ProjectType(req.Type), models.ProjectStatus(req.Status),
		req.Description, req.StartDate, req.EndDate, participants)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := h.fetchProject(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.fetchProject(w, r); !ok {
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Type        *string `json:"type"`
		Status      *string `json:"status"`
		Description *string `json:"description"`
		StartDate   *string `json:"startDate"`
		EndDate     *string `json:"endDate"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	upd := store.ProjectUpdate{
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Name != nil {
		name, err := utils.ValidateRequiredString(*req.Name, "name")
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		upd.Name = &name
	}
	if req.Type != nil {
		t := models.ProjectType(*req.Type)
		upd.Type = &t
	}
	if req.Status != nil {
		s := models.ProjectStatus(*req.Status)
		upd.Status = &s
	}

	project, err := h.Service.UpdateProject(r.Context(), mux.Vars(r)["projectId"], upd)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// Join adds the session user to the project.
func (h *ProjectHandler) Join(w http.ResponseWriter, r *http.Request) {
	h.changeMembership(w, r, true)
}

// Leave removes the session user from the project.
func (h *ProjectHandler) Leave(w http.ResponseWriter, r *http.Request) {
	h.changeMembership(w, r, false)
}

func (h *ProjectHandler) changeMembership(w http.ResponseWriter, r *http.Request, join bool) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	project, ok := h.fetchProject(w, r)
	if !ok {
		return
	}

	var err error
	if join {
		project, err = h.Service.Join(r.Context(), project.ID, claims.UserID)
	} else {
		project, err = h.Service.Leave(r.Context(), project.ID, claims.UserID)
	}
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) ListProjectAreas(w http.ResponseWriter, r *http.Request) {
	project, ok := h.fetchProject(w, r)
	if !ok {
		return
	}
	areas, err := h.Areas.ListAreas(r.Context(), project.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if areas == nil {
		areas = []models.Area{}
	}
	respondJSON(w, http.StatusOK, areas)
}

func (h *ProjectHandler) ListProjectTasks(w http.ResponseWriter, r *http.Request) {
	project, ok := h.fetchProject(w, r)
	if !ok {
		return
	}
	tasks, err := h.Tasks.ListTasks(r.Context(), project.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (h *ProjectHandler) ListProjectMeetings(w http.ResponseWriter, r *http.Request) {
	project, ok := h.fetchProject(w, r)
	if !ok {
		return
	}
	meetings, err := h.Meetings.ListMeetings(r.Context(), project.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if meetings == nil {
		meetings = []models.Meeting{}
	}
	respondJSON(w, http.StatusOK, meetings)
}

func (h *ProjectHandler) fetchProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	project, err := h.Service.GetProject(r.Context(), mux.Vars(r)["projectId"])
	if err != nil {
		respondServiceError(w, r, err)
		return nil, false
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return nil, false
	}
	return project, true
}
