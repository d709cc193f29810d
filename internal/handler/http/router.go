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
	"github.com/paracal/paracal-backend-go/internal/handler/http/middleware"
	"github.com/paracal/paracal-backend-go/internal/handler/http/response"
	"github.com/paracal/paracal-backend-go/internal/pkg/jwt"
)

// RouterConfig carries the application settings the router needs.
type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
	LogLevel       slog.Level
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	eventHandler EventHandler,
	holidayHandler HolidayHandler,
	publicHolidayHandler PublicHolidayHandler,
	cronjobHandler CronjobHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			response.Success(w, map[string]string{"status": "ok"})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		r.Get("/dashboard/summary", dashboardHandler.GetSummary)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Put("/{id}", employeeHandler.UpdateEmployee)
			r.Delete("/{id}", employeeHandler.DeleteEmployee)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.List)
			r.Post("/", eventHandler.Create)
			r.Get("/date/{date}", eventHandler.ListByDate)
			r.Get("/date-range/{start}/{end}", eventHandler.ListByDateRange)
			r.Get("/employee", eventHandler.ListByEmployeeName)
			r.Get("/employee/{employeeId}", eventHandler.ListByEmployeeID)
			r.Get("/leave-type/{leaveType}", eventHandler.ListByLeaveType)
			r.Get("/month/{year}/{month}", eventHandler.ListByMonth)
			r.Get("/search/{query}", eventHandler.Search)
			r.Get("/upcoming", eventHandler.Upcoming)
			r.Get("/upcoming/{days}", eventHandler.Upcoming)
			r.Get("/stats/overview", eventHandler.Stats)
			r.Get("/dashboard/summary", dashboardHandler.GetSummary)

			// Admin only
			r.Route("/bulk", func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
				r.Use(middleware.AdminOnly)
				r.Delete("/month/{year}/{month}", eventHandler.BulkDeleteByMonth)
				r.Delete("/year/{year}", eventHandler.BulkDeleteByYear)
				r.Delete("/all", eventHandler.BulkDeleteAll)
			})

			r.Get("/{id}", eventHandler.Get)
			r.Put("/{id}", eventHandler.Update)
			r.Delete("/{id}", eventHandler.Delete)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/range/{start}/{end}", publicHolidayHandler.ListByRange)
			r.Get("/check/{date}", publicHolidayHandler.Check)
			r.Get("/{year:[0-9]{4}}", publicHolidayHandler.ListByYear)
		})

		r.Route("/company-holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.List)
			r.Get("/holiday/{id}", holidayHandler.Get)
			r.Get("/range/{start}/{end}", holidayHandler.ListByRange)
			r.Get("/check/{date}", holidayHandler.Check)
			r.Get("/{year:[0-9]{4}}", holidayHandler.ListByYear)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
				r.Use(middleware.AdminOnly)
				r.Post("/", holidayHandler.Create)
				r.Post("/bulk", holidayHandler.CreateBulk)
				r.Delete("/clear-all", holidayHandler.DeleteAll)
				r.Put("/{id}", holidayHandler.Update)
				r.Delete("/{id}", holidayHandler.Delete)
			})
		})

		// Admin only
		r.Route("/cronjobs", func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.AdminOnly)
			r.Get("/", cronjobHandler.List)
			r.Post("/", cronjobHandler.Create)
			r.Get("/status", cronjobHandler.Status)
			r.Get("/{id}", cronjobHandler.Get)
			r.Put("/{id}", cronjobHandler.Update)
			r.Delete("/{id}", cronjobHandler.Delete)
			r.Post("/{id}/test", cronjobHandler.Test)
		})
	})
	return r
}
