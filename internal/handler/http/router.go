package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tapatrack/tapatrack-backend-go/internal/handler/http/middleware"
	"github.com/tapatrack/tapatrack-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	frontendURL string,
	env string,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	credentialHandler CredentialHandler,
	policyHandler PolicyHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tapatrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/verify-pin", authHandler.VerifyPin)
		})

		// The kiosk scans without a session of its own
		r.Post("/attendance/scan", attendanceHandler.Scan)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Get("/attendance", attendanceHandler.ListDay)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Register)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Patch("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Deactivate)
					r.Post("/reactivate", employeeHandler.Reactivate)

					r.Route("/credential", func(r chi.Router) {
						r.Get("/", credentialHandler.Get)
						r.Post("/deactivate", credentialHandler.Deactivate)
						r.Post("/activate", credentialHandler.Activate)
					})
				})
			})

			r.Route("/policy", func(r chi.Router) {
				r.Get("/", policyHandler.Get)
				r.Put("/", policyHandler.Save)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.ListRecords)
				r.Post("/calculate", payrollHandler.Calculate)
				r.Post("/generate", payrollHandler.Generate)
			})

			r.Route("/reports/attendance", func(r chi.Router) {
				r.Get("/", reportHandler.Generate)
				r.Get("/export/excel", reportHandler.ExportExcel)
				r.Get("/export/pdf", reportHandler.ExportPDF)
			})
		})
	})

	return r
}
