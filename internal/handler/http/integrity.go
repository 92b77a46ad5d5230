package http

import (
	"net/http"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/integrity"
	"github.com/magang-absensi/attendance-backend-go/internal/handler/http/response"
)

type IntegrityHandler interface {
	CheckDuplicates(w http.ResponseWriter, r *http.Request)
}

type integrityHandlerImpl struct {
	integrityService integrity.IntegrityService
}

func NewIntegrityHandler(integrityService integrity.IntegrityService) IntegrityHandler {
	return &integrityHandlerImpl{integrityService: integrityService}
}

// CheckDuplicates implements IntegrityHandler. The request context ends when
// the client navigates away, which abandons the fan-out.
func (h *integrityHandlerImpl) CheckDuplicates(w http.ResponseWriter, r *http.Request) {
	userID, attendanceID, err := userAttendanceParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.integrityService.CheckDuplicates(r.Context(), userID, attendanceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
