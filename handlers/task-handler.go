package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/services"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
	"github.com/andyguzmaneth/ethcr-planner-sub000/utils"
)

type TaskHandler struct {
	Service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProjectID        string             `json:"projectId"`
		AreaID           string             `json:"areaId"`
		Title            string             `json:"title"`
		Description      string             `json:"description"`
		AssigneeID       string             `json:"assigneeId"`
		Deadline         string             `json:"deadline"`
		Status           string             `json:"status"`
		SupportResources any                `json:"supportResources"`
		DependsOn        []string           `json:"dependsOn"`
		Recurrence       *models.Recurrence `json:"recurrence"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	projectID := utils.ValidateUUID(req.ProjectID)
	if projectID == "" {
		respondError(w, http.StatusBadRequest, "Valid projectId is required")
		return
	}
	title, err := utils.ValidateRequiredString(req.Title, "title")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var dependsOn []string
	for _, id := range req.DependsOn {
		if valid := utils.ValidateUUID(id); valid != "" {
			dependsOn = append(dependsOn, valid)
		}
	}

	task := &models.Task{
		ProjectID:        projectID,
		AreaID:           utils.ValidateUUID(req.AreaID),
		Title:            title,
		Description:      req.Description,
		AssigneeID:       utils.ValidateUUID(req.AssigneeID),
		Deadline:         req.Deadline,
		Status:           models.TaskStatus(req.Status),
		SupportResources: utils.ParseSupportResources(req.SupportResources),
		DependsOn:        dependsOn,
		Recurrence:       req.Recurrence,
	}

	created, err := h.Service.CreateTask(r.Context(), task)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, ok := h.fetchTask(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	task, ok := h.fetchTask(w, r)
	if !ok {
		return
	}

	var req struct {
		AreaID           *string            `json:"areaId"`
		Title            *string            `json:"title"`
		Description      *string            `json:"description"`
		AssigneeID       *string            `json:"assigneeId"`
		Deadline         *string            `json:"deadline"`
		Status           *string            `json:"status"`
		SupportResources any                `json:"supportResources"`
		DependsOn        *[]string          `json:"dependsOn"`
		Recurrence       *models.Recurrence `json:"recurrence"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	upd := store.TaskUpdate{
		Description: req.Description,
		Deadline:    req.Deadline,
		Recurrence:  req.Recurrence,
	}
	if req.Title != nil {
		title, err := utils.ValidateRequiredString(*req.Title, "title")
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		upd.Title = &title
	}
	if req.AreaID != nil {
		// An empty string clears the area; a malformed id is an error rather
		// than an accidental clear.
		areaID := utils.ValidateUUID(*req.AreaID)
		if *req.AreaID != "" && areaID == "" {
			respondError(w, http.StatusBadRequest, "Invalid areaId")
			return
		}
		upd.AreaID = &areaID
	}
	if req.AssigneeID != nil {
		assigneeID := utils.ValidateUUID(*req.AssigneeID)
		if *req.AssigneeID != "" && assigneeID == "" {
			respondError(w, http.StatusBadRequest, "Invalid assigneeId")
			return
		}
		upd.AssigneeID = &assigneeID
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		upd.Status = &status
	}
	if resources := utils.ParseSupportResources(req.SupportResources); resources != nil {
		upd.SupportResources = &resources
	}
	if req.DependsOn != nil {
		dependsOn := []string{}
		for _, id := range *req.DependsOn {
			if valid := utils.ValidateUUID(id); valid != "" {
				dependsOn = append(dependsOn, valid)
			}
		}
		upd.DependsOn = &dependsOn
	}

	updated, err := h.Service.UpdateTask(r.Context(), task.ID, upd)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "Task not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	task, ok := h.fetchTask(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteTask(r.Context(), task.ID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

func (h *TaskHandler) fetchTask(w http.ResponseWriter, r *http.Request) (*models.Task, bool) {
	task, err := h.Service.GetTask(r.Context(), mux.Vars(r)["taskId"])
	if err != nil {
		respondServiceError(w, r, err)
		return nil, false
	}
	if task == nil {
		respondError(w, http.StatusNotFound, "Task not found")
		return nil, false
	}
	return task, true
}
