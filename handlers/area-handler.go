package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/services"
	"github.com/andyguzmaneth/ethcr-planner-sub000/store"
	"github.com/andyguzmaneth/ethcr-planner-sub000/utils"
)

type AreaHandler struct {
	Service *services.AreaService
}

func NewAreaHandler(service *services.AreaService) *AreaHandler {
	return &AreaHandler{Service: service}
}

func (h *AreaHandler) CreateArea(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProjectID      string   `json:"projectId"`
		Name           string   `json:"name"`
		Description    string   `json:"description"`
		LeadID         string   `json:"leadId"`
		ParticipantIDs []string `json:"participantIds"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	projectID := utils.ValidateUUID(req.ProjectID)
	if projectID == "" {
		respondError(w, http.StatusBadRequest, "Valid projectId is required")
		return
	}
	name, err := utils.ValidateRequiredString(req.Name, "name")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Malformed optional ids count as not provided.
	leadID := utils.ValidateUUID(req.LeadID)
	var participants []string
	for _, id := range req.ParticipantIDs {
		if valid := utils.ValidateUUID(id); valid != "" {
			participants = append(participants, valid)
		}
	}

	area, err := h.Service.CreateArea(r.Context(), projectID, name, req.Description, leadID, participants)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, area)
}

// Reorder handles PATCH /api/areas with a list of {id, order} pairs.
func (h *AreaHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var orders []store.AreaOrder
	if !decodeJSON(w, r, &orders) {
		return
	}

	for _, o := range orders {
		if utils.ValidateUUID(o.ID) == "" {
			respondError(w, http.StatusBadRequest, "Invalid area id in reorder request")
			return
		}
	}

	if err := h.Service.Reorder(r.Context(), orders); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Areas reordered"})
}

func (h *AreaHandler) GetArea(w http.ResponseWriter, r *http.Request) {
	area, ok := h.fetchArea(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, area)
}

func (h *AreaHandler) UpdateArea(w http.ResponseWriter, r *http.Request) {
	area, ok := h.fetchArea(w, r)
	if !ok {
		return
	}

	var req struct {
		Name           *string   `json:"name"`
		Description    *string   `json:"description"`
		LeadID         *string   `json:"leadId"`
		ParticipantIDs *[]string `json:"participantIds"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	upd := store.AreaUpdate{Description: req.Description}
	if req.Name != nil {
		name, err := utils.ValidateRequiredString(*req.Name, "name")
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		upd.Name = &name
	}
	if req.LeadID != nil {
		leadID := utils.ValidateUUID(*req.LeadID)
		upd.LeadID = &leadID
	}
	if req.ParticipantIDs != nil {
		participants := []string{}
		for _, id := range *req.ParticipantIDs {
			if valid := utils.ValidateUUID(id); valid != "" {
				participants = append(participants, valid)
			}
		}
		upd.ParticipantIDs = &participants
	}

	updated, err := h.Service.UpdateArea(r.Context(), area.ID, upd)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *AreaHandler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	area, ok := h.fetchArea(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteArea(r.Context(), area.ID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Area deleted"})
}

func (h *AreaHandler) ListResponsibilities(w http.ResponseWriter, r *http.Request) {
	area, ok := h.fetchArea(w, r)
	if !ok {
		return
	}
	list, err := h.Service.ListResponsibilities(r.Context(), area.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if list == nil {
		list = []models.Responsibility{}
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *AreaHandler) CreateResponsibility(w http.ResponseWriter, r *http.Request) {
	area, ok := h.fetchArea(w, r)
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	name, err := utils.ValidateRequiredString(req.Name, "name")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.Service.CreateResponsibility(r.Context(), area.ID, name, req.Description)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (h *AreaHandler) fetchArea(w http.ResponseWriter, r *http.Request) (*models.Area, bool) {
	area, err := h.Service.GetArea(r.Context(), mux.Vars(r)["areaId"])
	if err != nil {
		respondServiceError(w, r, err)
		return nil, false
	}
	if area == nil {
		respondError(w, http.StatusNotFound, "Area not found")
		return nil, false
	}
	return area, true
}
