package http

import (
	"log/slog"
	"os"

	"github.com/gajkesari/backoffice-go/internal/config"
	"github.com/gajkesari/backoffice-go/internal/handler/http/middleware"
	"github.com/gajkesari/backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Salary   SalaryHandler
	Travel   TravelHandler
	Approval ApprovalHandler
	Sales    SalesHandler
	Enquiry  EnquiryHandler
	Employee EmployeeHandler
	Visit    VisitHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gajkesari-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/salary", func(r chi.Router) {
				r.Get("/summary-range", h.Salary.SummaryRange)
				r.Get("/daily-breakdown", h.Salary.DailyBreakdown)
				r.Get("/reconciliation", h.Salary.Reconciliation)
			})

			r.Route("/travel-allowance", func(r chi.Router) {
				r.Get("/anomalies", h.Travel.Anomalies)
				r.Post("/backfill", h.Travel.Backfill)
			})

			r.Route("/approvals", func(r chi.Router) {
				r.Get("/", h.Approval.List)
				r.Put("/{id}/decision", h.Approval.Decide)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", h.Sales.List)
				r.Post("/", h.Sales.Create)
				r.Get("/summary", h.Sales.StoreSummary)
				r.Route("/stores", func(r chi.Router) {
					r.Get("/", h.Sales.Stores)
					r.Get("/{id}/officer", h.Sales.StoreOfficer)
				})
			})

			r.Route("/enquiries", func(r chi.Router) {
				r.Get("/", h.Enquiry.List)
				r.Post("/upload", h.Enquiry.Upload)
			})

			r.Get("/employees/field-officers", h.Employee.FieldOfficers)

			r.Route("/visits", func(r chi.Router) {
				r.Get("/field-officer-stats", h.Visit.OfficerStats)
				r.Get("/customer-details", h.Visit.CustomerDetails)
			})
		})

		// EventSource cannot send headers; the handler validates the
		// query-string token itself.
		r.Get("/travel-allowance/backfill/events", h.Travel.BackfillEvents)
	})
	return r
}
