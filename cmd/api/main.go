package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Valeria-CPaz/app-agendamento/internal/config"
	"github.com/Valeria-CPaz/app-agendamento/internal/email"
	"github.com/Valeria-CPaz/app-agendamento/internal/handler"
	appointmentHandler "github.com/Valeria-CPaz/app-agendamento/internal/handler/appointment"
	authHandler "github.com/Valeria-CPaz/app-agendamento/internal/handler/auth"
	patientHandler "github.com/Valeria-CPaz/app-agendamento/internal/handler/patient"
	reportHandler "github.com/Valeria-CPaz/app-agendamento/internal/handler/report"
	settingsHandler "github.com/Valeria-CPaz/app-agendamento/internal/handler/settings"
	"github.com/Valeria-CPaz/app-agendamento/internal/middleware"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
	"github.com/Valeria-CPaz/app-agendamento/internal/repository/postgres"
	redisrepo "github.com/Valeria-CPaz/app-agendamento/internal/repository/redis"
	"github.com/Valeria-CPaz/app-agendamento/internal/router"
	appointmentService "github.com/Valeria-CPaz/app-agendamento/internal/service/appointment"
	authService "github.com/Valeria-CPaz/app-agendamento/internal/service/auth"
	patientService "github.com/Valeria-CPaz/app-agendamento/internal/service/patient"
	reportService "github.com/Valeria-CPaz/app-agendamento/internal/service/report"
	settingsService "github.com/Valeria-CPaz/app-agendamento/internal/service/settings"
	"github.com/Valeria-CPaz/app-agendamento/pkg/logger"
	"github.com/Valeria-CPaz/app-agendamento/pkg/security"
	"github.com/Valeria-CPaz/app-agendamento/pkg/validator"
)

type repositories struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	settings     repository.SettingsRepository
	close        func() error
}

func main() {
	log := logger.New(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	if err := validator.RegisterCustomRules(); err != nil {
		log.Fatal(err, "failed to register validation rules")
	}

	repos, err := openRepositories(cfg)
	if err != nil {
		log.Fatal(err, "failed to open storage")
	}
	defer repos.close()

	hasher := security.NewBcryptHasher(12)

	patientSvc := patientService.NewService(repos.patients)
	appointmentSvc := appointmentService.NewService(repos.appointments, repos.patients)
	reportSvc := reportService.NewService(repos.appointments, repos.patients)
	settingsSvc := settingsService.NewService(repos.settings, hasher)
	authSvc := authService.NewService(repos.settings, hasher, cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	emailSvc := email.NewSMTPService(cfg.SMTP)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		reportHandler.NewHandler(reportSvc, emailSvc),
		settingsHandler.NewHandler(settingsSvc),
		handler.NewHandler(),
		router.Config{
			RateLimit:     50,
			RateBurst:     100,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "agendamento",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}

func openRepositories(cfg *config.Config) (*repositories, error) {
	switch cfg.Storage.Driver {
	case "redis":
		store, err := redisrepo.NewStore(cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		return &repositories{
			appointments: redisrepo.NewAppointmentRepository(store),
			patients:     redisrepo.NewPatientRepository(store),
			settings:     redisrepo.NewSettingsRepository(store),
			close:        store.Close,
		}, nil
	case "postgres", "":
		db, err := postgres.NewDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		return &repositories{
			appointments: postgres.NewAppointmentRepository(db),
			patients:     postgres.NewPatientRepository(db),
			settings:     postgres.NewSettingsRepository(db),
			close:        db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
