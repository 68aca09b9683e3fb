package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
	"github.com/andyguzmaneth/ethcr-planner-sub000/services"
	"github.com/andyguzmaneth/ethcr-planner-sub000/utils"
)

type TemplateHandler struct {
	Service *services.TemplateService
}

func NewTemplateHandler(service *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{Service: service}
}

func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.Service.ListTemplates(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if templates == nil {
		templates = []models.ProjectTemplate{}
	}
	respondJSON(w, http.StatusOK, templates)
}

func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string                `json:"name"`
		ProjectType string                `json:"projectType"`
		Areas       []models.TemplateArea `json:"areas"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	name, err := utils.ValidateRequiredString(req.Name, "name")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tpl, err := h.Service.CreateTemplate(r.Context(), name, models.ProjectType(req.ProjectType), req.Areas)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, tpl)
}

// Apply expands a stored template into a new project.
func (h *TemplateHandler) Apply(w http.ResponseWriter, r *http.Request) {
	tpl, err := h.Service.GetTemplate(r.Context(), mux.Vars(r)["templateId"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if tpl == nil {
		respondError(w, http.StatusNotFound, "Template not found")
		return
	}

	var req struct {
		ProjectName string `json:"projectName"`
	}
	// The body is optional; a missing or empty one keeps the template name.
	if r.Body != nil && r.ContentLength > 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}

	project, err := h.Service.Expand(r.Context(), tpl, req.ProjectName)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, project)
}

// SeedLaItaba expands the bundled template once.
func (h *TemplateHandler) SeedLaItaba(w http.ResponseWriter, r *http.Request) {
	project, err := h.Service.SeedLaItaba(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, project)
}
