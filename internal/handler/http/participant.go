package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/handler/http/response"
)

type ParticipantHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type participantHandlerImpl struct {
	participantService participant.ParticipantService
}

func NewParticipantHandler(participantService participant.ParticipantService) ParticipantHandler {
	return &participantHandlerImpl{participantService: participantService}
}

// List implements ParticipantHandler.
func (h *participantHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := participant.ListFilter{Status: query.Get("status")}
	if search := strings.TrimSpace(query.Get("search")); search != "" {
		filter.Search = &search
	}

	list, err := h.participantService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, list, len(list))
}

// Create implements ParticipantHandler.
func (h *participantHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req participant.CreateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode participant request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.participantService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Participant created successfully", created)
}

// Get implements ParticipantHandler.
func (h *participantHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	p, err := h.participantService.Get(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// Update implements ParticipantHandler.
func (h *participantHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req participant.UpdateParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode participant request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = userID

	updated, err := h.participantService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Participant updated successfully", updated)
}

// Delete implements ParticipantHandler.
func (h *participantHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.participantService.Delete(r.Context(), userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Participant deleted successfully", nil)
}
