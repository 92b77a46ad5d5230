package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/attendance"
	"github.com/magang-absensi/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Classify(w http.ResponseWriter, r *http.Request)
	Geofence(w http.ResponseWriter, r *http.Request)
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Generate implements AttendanceHandler.
func (h *attendanceHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Generate(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance generated successfully", result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	history, err := h.attendanceService.History(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, history, len(history))
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, attendanceID, err := userAttendanceParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.Get(r.Context(), userID, attendanceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, attendanceID, err := userAttendanceParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance update", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID
	req.ID = attendanceID

	updated, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", updated)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, attendanceID, err := userAttendanceParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), userID, attendanceID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}

// Classify implements AttendanceHandler.
func (h *attendanceHandlerImpl) Classify(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode classify request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Classify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Geofence implements AttendanceHandler.
func (h *attendanceHandlerImpl) Geofence(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.attendanceService.Geofence(r.Context()))
}

// ListLeaveRequests implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	var filter attendance.LeaveRequestFilter
	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		filter.Search = &search
	}

	list, err := h.attendanceService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, list, len(list))
}

// ApproveLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	attendanceID, err := attendanceIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.ApproveLeave(r.Context(), attendanceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", record)
}

// RejectLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	attendanceID, err := attendanceIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.RejectLeave(r.Context(), attendanceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", record)
}
