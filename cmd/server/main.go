package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"activitysignup/config"
	emailadapter "activitysignup/internal/adapters/email"
	delivery "activitysignup/internal/delivery/http"
	"activitysignup/internal/delivery/http/controllers"
	"activitysignup/internal/delivery/http/middleware"
	"activitysignup/internal/repository/memory"
	"activitysignup/internal/services"

	_ "activitysignup/docs"
)

// @title School Activity Signup API
// @version 1.0
// @description Lists extracurricular activities and manages student signups.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	activityRepo := memory.NewActivityRepository(memory.DefaultSeed())

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	activityService := services.NewActivityService(activityRepo, emailService, logger)
	activityController := controllers.NewActivityController(logger, activityService)

	mux := delivery.NewRouter(activityController, cfg.StaticDir)

	var handler http.Handler = mux
	if len(cfg.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.AllowedOrigins, handler)
	}
	handler = middleware.Logging(logger, handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
