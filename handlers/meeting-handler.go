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

type MeetingHandler struct {
	Service *services.MeetingService
}

func NewMeetingHandler(service *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{Service: service}
}

func (h *MeetingHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProjectID   string   `json:"projectId"`
		Title       string   `json:"title"`
		Date        string   `json:"date"`
		Time        string   `json:"time"`
		AttendeeIDs []string `json:"attendeeIds"`
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
	date, err := utils.ValidateRequiredString(req.Date, "date")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	meetingTime, err := utils.ValidateRequiredString(req.Time, "time")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var attendees []string
	for _, id := range req.AttendeeIDs {
		if valid := utils.ValidateUUID(id); valid != "" {
			attendees = append(attendees, valid)
		}
	}

	meeting, err := h.Service.CreateMeeting(r.Context(), &models.Meeting{
		ProjectID:   projectID,
		Title:       title,
		Date:        date,
		Time:        meetingTime,
		AttendeeIDs: attendees,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, meeting)
}

func (h *MeetingHandler) GetMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, ok := h.fetchMeeting(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, meeting)
}

func (h *MeetingHandler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, ok := h.fetchMeeting(w, r)
	if !ok {
		return
	}

	var req struct {
		Title       *string   `json:"title"`
		Date        *string   `json:"date"`
		Time        *string   `json:"time"`
		AttendeeIDs *[]string `json:"attendeeIds"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	upd := store.MeetingUpdate{Date: req.Date, Time: req.Time}
	if req.Title != nil {
		title, err := utils.ValidateRequiredString(*req.Title, "title")
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		upd.Title = &title
	}
	if req.AttendeeIDs != nil {
		attendees := []string{}
		for _, id := range *req.AttendeeIDs {
			if valid := utils.ValidateUUID(id); valid != "" {
				attendees = append(attendees, valid)
			}
		}
		upd.AttendeeIDs = &attendees
	}

	updated, err := h.Service.UpdateMeeting(r.Context(), meeting.ID, upd)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *MeetingHandler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, ok := h.fetchMeeting(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteMeeting(r.Context(), meeting.ID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Meeting deleted"})
}

// GetMeetingNote serves the single note attached to a meeting.
func (h *MeetingHandler) GetMeetingNote(w http.ResponseWriter, r *http.Request) {
	meeting, ok := h.fetchMeeting(w, r)
	if !ok {
		return
	}
	note, err := h.Service.GetNoteByMeeting(r.Context(), meeting.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Meeting note not found")
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *MeetingHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MeetingID   string `json:"meetingId"`
		Content     string `json:"content"`
		Agenda      string `json:"agenda"`
		Decisions   string `json:"decisions"`
		ActionItems any    `json:"actionItems"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	meetingID := utils.ValidateUUID(req.MeetingID)
	if meetingID == "" {
		respondError(w, http.StatusBadRequest, "Valid meetingId is required")
		return
	}
	content, err := utils.ValidateRequiredString(req.Content, "content")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	meeting, err := h.Service.GetMeeting(r.Context(), meetingID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if meeting == nil {
		respondError(w, http.StatusNotFound, "Meeting not found")
		return
	}

	createdBy := ""
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		createdBy = claims.UserID
	}

	note, err := h.Service.CreateNote(r.Context(), meeting.ID, content, req.Agenda, req.Decisions,
		utils.ParseSupportResources(req.ActionItems), createdBy)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

func (h *MeetingHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.Service.GetNote(r.Context(), mux.Vars(r)["noteId"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Meeting note not found")
		return
	}

	var req struct {
		Content     *string `json:"content"`
		Agenda      *string `json:"agenda"`
		Decisions   *string `json:"decisions"`
		ActionItems any     `json:"actionItems"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	upd := store.NoteUpdate{Agenda: req.Agenda, Decisions: req.Decisions}
	if req.Content != nil {
		content, err := utils.ValidateRequiredString(*req.Content, "content")
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		upd.Content = &content
	}
	if items := utils.ParseSupportResources(req.ActionItems); items != nil {
		upd.ActionItems = &items
	}

	updated, err := h.Service.UpdateNote(r.Context(), note.ID, upd)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *MeetingHandler) fetchMeeting(w http.ResponseWriter, r *http.Request) (*models.Meeting, bool) {
	meeting, err := h.Service.GetMeeting(r.Context(), mux.Vars(r)["meetingId"])
	if err != nil {
		respondServiceError(w, r, err)
		return nil, false
	}
	if meeting == nil {
		respondError(w, http.StatusNotFound, "Meeting not found")
		return nil, false
	}
	return meeting, true
}
