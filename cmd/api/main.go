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

	"github.com/paracal/paracal-backend-go/internal/config"
	appHTTP "github.com/paracal/paracal-backend-go/internal/handler/http"
	"github.com/paracal/paracal-backend-go/internal/pkg/calendarific"
	"github.com/paracal/paracal-backend-go/internal/pkg/cron"
	"github.com/paracal/paracal-backend-go/internal/pkg/database"
	"github.com/paracal/paracal-backend-go/internal/pkg/jwt"
	"github.com/paracal/paracal-backend-go/internal/pkg/webhook"
	"github.com/paracal/paracal-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/paracal/paracal-backend-go/internal/service/auth"
	cronjobService "github.com/paracal/paracal-backend-go/internal/service/cronjob"
	dashboardService "github.com/paracal/paracal-backend-go/internal/service/dashboard"
	employeeService "github.com/paracal/paracal-backend-go/internal/service/employee"
	eventService "github.com/paracal/paracal-backend-go/internal/service/event"
	holidayService "github.com/paracal/paracal-backend-go/internal/service/holiday"
	publicHolidayService "github.com/paracal/paracal-backend-go/internal/service/publicholiday"
)

const version = "v1.0.0"

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logLevel := parseLogLevel(cfg.App.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("Error applying database schema", "error", err)
		os.Exit(1)
	}

	loc := cfg.Location()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	cronjobRepo := postgresql.NewCronjobRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	publicHolidayRepo := postgresql.NewPublicHolidayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	webhookClient := webhook.NewClient(cfg.Notification.WebhookTimeout)
	calendarificClient := calendarific.NewClient(cfg.Calendarific)

	authSvc := serviceAuth.NewAuthService(cfg.Admin.PINHash, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	eventSvc := eventService.NewEventService(eventRepo, employeeRepo, loc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	publicHolidaySvc := publicHolidayService.NewPublicHolidayService(calendarificClient, publicHolidayRepo)
	cronjobSvc := cronjobService.NewCronjobService(cronjobRepo, eventRepo, holidayRepo, webhookClient, loc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, loc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			Version:        version,
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			LogLevel:       logLevel,
		},
		JWTService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewEventHandler(eventSvc),
		appHTTP.NewHolidayHandler(holidaySvc),
		appHTTP.NewPublicHolidayHandler(publicHolidaySvc),
		appHTTP.NewCronjobHandler(cronjobSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	scheduler := cron.NewScheduler()
	cron.NewNotificationJobs(cronjobSvc, cfg.Notification.CheckInterval).RegisterJobs(scheduler)
	if err := scheduler.Start(ctx); err != nil {
		slog.Error("Error starting cron scheduler", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	scheduler.Stop()
}
