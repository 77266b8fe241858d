package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vetlyst/directory-api/internal/config"
	"github.com/vetlyst/directory-api/internal/email"
	clinicHandler "github.com/vetlyst/directory-api/internal/handler/clinic"
	submissionHandler "github.com/vetlyst/directory-api/internal/handler/submission"
	"github.com/vetlyst/directory-api/internal/middleware"
	"github.com/vetlyst/directory-api/internal/repository/postgres"
	"github.com/vetlyst/directory-api/internal/router"
	directoryService "github.com/vetlyst/directory-api/internal/service/directory"
	submissionService "github.com/vetlyst/directory-api/internal/service/submission"
	"github.com/vetlyst/directory-api/pkg/logger"
	"github.com/vetlyst/directory-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(nil)
	appMetrics := metrics.New("vetlyst")

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	clinicRepo := postgres.NewClinicRepository(db)
	appointmentRepo := postgres.NewAppointmentRequestRepository(db)
	claimRepo := postgres.NewClaimRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	// Collaborators are constructed here and passed down explicitly; nothing
	// below this point reads ambient configuration.
	mailer := email.NewSMTPService(cfg.SMTP)

	directorySvc := directoryService.NewService(clinicRepo, cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	submissionSvc := submissionService.NewService(
		appointmentRepo, claimRepo, outboxRepo, mailer, appLogger, appMetrics,
	)

	clinicH := clinicHandler.NewHandler(directorySvc)
	submissionH := submissionHandler.NewHandler(submissionSvc)

	r := router.NewRouter(clinicH, submissionH, router.Config{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitRPS:     cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst:   cfg.RateLimit.Burst,
		RequestTimeout:   cfg.Server.RequestTimeout,
		CORS:             middleware.DefaultCORSConfig(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
