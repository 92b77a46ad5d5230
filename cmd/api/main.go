package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/config"
	"github.com/magang-absensi/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/magang-absensi/attendance-backend-go/internal/handler/http"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/cron"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/database"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/geo"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/jwt"
	"github.com/magang-absensi/attendance-backend-go/internal/repository/postgresql"
	announcementService "github.com/magang-absensi/attendance-backend-go/internal/service/announcement"
	attendanceService "github.com/magang-absensi/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/magang-absensi/attendance-backend-go/internal/service/auth"
	integrityService "github.com/magang-absensi/attendance-backend-go/internal/service/integrity"
	participantService "github.com/magang-absensi/attendance-backend-go/internal/service/participant"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.App.LogLevel),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := postgresql.ApplySchema(ctx, db); err != nil {
		return err
	}

	participantRepo := postgresql.NewParticipantRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)

	if _, err := fixtures.SeedAdmin(ctx, participantRepo, fixtures.AdminAccount{
		Name:     cfg.Admin.Name,
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, time.Now().In(cfg.App.Timezone)); err != nil {
		return err
	}

	fence := geo.Fence{
		Office: geo.Coordinate{
			Latitude:  cfg.Geofence.OfficeLatitude,
			Longitude: cfg.Geofence.OfficeLongitude,
		},
		RadiusMeters: cfg.Geofence.RadiusMeters,
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(participantRepo, JWTService)
	participantSvc := participantService.NewParticipantService(participantRepo, cfg.App.Timezone)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, participantRepo, fence, cfg.App.Timezone)
	integritySvc := integrityService.NewIntegrityService(attendanceRepo, participantRepo, integrityService.Options{
		FetchTimeout:   cfg.Integrity.FetchTimeout,
		MaxConcurrency: cfg.Integrity.MaxConcurrency,
	}, cfg.App.Timezone)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)

	scheduler := cron.NewScheduler()
	if err := cron.NewIntegrityJobs(integritySvc, cfg.Integrity.SweepInterval).RegisterJobs(scheduler); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		FrontendURL: cfg.App.FrontendURL,
		Env:         cfg.App.Env,
		Version:     version,
	}, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authService),
		Participant:  appHTTP.NewParticipantHandler(participantSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Integrity:    appHTTP.NewIntegrityHandler(integritySvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
