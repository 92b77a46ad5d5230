package middleware

import (
	"net/http"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/auth"
	"github.com/magang-absensi/attendance-backend-go/internal/handler/http/response"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/session"
)

// AdminOnly admits only admin sessions. It runs after AuthRequired.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := session.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !sess.IsAdmin() {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
