package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/announcement"
	"github.com/magang-absensi/attendance-backend-go/internal/handler/http/response"
)

type AnnouncementHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &announcementHandlerImpl{announcementService: announcementService}
}

func (h *announcementHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	list, err := h.announcementService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithCount(w, list, len(list))
}

func (h *announcementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req announcement.AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode announcement request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Announcement created successfully", created)
}

func (h *announcementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", announcement.ErrAnnouncementNotFound)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req announcement.AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode announcement request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.announcementService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Announcement updated successfully", updated)
}

func (h *announcementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", announcement.ErrAnnouncementNotFound)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.announcementService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Announcement deleted successfully", nil)
}
