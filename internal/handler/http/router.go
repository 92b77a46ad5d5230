package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/magang-absensi/attendance-backend-go/internal/handler/http/middleware"
	"github.com/magang-absensi/attendance-backend-go/internal/handler/http/response"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/jwt"
)

type RouterOptions struct {
	FrontendURL string
	Env         string
	Version     string
}

type Handlers struct {
	Auth         AuthHandler
	Participant  ParticipantHandler
	Attendance   AttendanceHandler
	Integrity    IntegrityHandler
	Announcement AnnouncementHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "magang-absensi"),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)

		// Requires an admin session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(middleware.AdminOnly)

			r.Post("/logout", h.Auth.Logout)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.Participant.List)
				r.Post("/", h.Participant.Create)

				r.Route("/{userId}", func(r chi.Router) {
					r.Get("/", h.Participant.Get)
					r.Put("/", h.Participant.Update)
					r.Delete("/", h.Participant.Delete)

					r.Route("/attendance", func(r chi.Router) {
						r.Post("/generate", h.Attendance.Generate)
						r.Get("/history", h.Attendance.History)

						r.Route("/{attendanceId}", func(r chi.Router) {
							r.Get("/", h.Attendance.Get)
							r.Put("/", h.Attendance.Update)
							r.Delete("/", h.Attendance.Delete)
							r.Get("/duplicates", h.Integrity.CheckDuplicates)
						})
					})
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/classify", h.Attendance.Classify)
				r.Get("/leave-requests", h.Attendance.ListLeaveRequests)
				r.Put("/{attendanceId}/approve-leave", h.Attendance.ApproveLeave)
				r.Delete("/{attendanceId}/reject-leave", h.Attendance.RejectLeave)
			})

			r.Get("/geofence", h.Attendance.Geofence)

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/active", h.Announcement.ListActive)
				r.Post("/", h.Announcement.Create)
				r.Put("/{id}", h.Announcement.Update)
				r.Delete("/{id}", h.Announcement.Delete)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
