package http

import (
	"log/slog"
	"os"

	"github.com/educenter/backoffice-go/internal/handler/http/middleware"
	"github.com/educenter/backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	customerHandler CustomerHandler,
	invoiceHandler InvoiceHandler,
	payrollHandler PayrollHandler,
	notificationHandler NotificationHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "educenter-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", customerHandler.List)
				r.Get("/{id}", customerHandler.GetByID)

				// Manager and above
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", customerHandler.Create)
					r.Put("/{id}", customerHandler.Update)
					r.Delete("/{id}", customerHandler.Delete)
				})
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", invoiceHandler.List)
				r.Get("/{id}", invoiceHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", invoiceHandler.Create)
					r.Put("/{id}", invoiceHandler.Update)
					r.Delete("/{id}", invoiceHandler.Delete)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", payrollHandler.List)
					r.Post("/", payrollHandler.Create)
					r.Get("/{id}", payrollHandler.GetByID)
					r.Put("/{id}", payrollHandler.Update)
				})

				// Deleting a payroll record is admin only.
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Post("/{id}/read", notificationHandler.MarkRead)

				// Delete permission is evaluated in the service (creator or
				// elevated role), not here.
				r.Delete("/{id}", notificationHandler.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", notificationHandler.Create)
				})
			})
		})
	})
	return r
}
