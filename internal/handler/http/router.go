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
	"github.com/shiftwise-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	shiftPlanHandler ShiftPlanHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Refresh works on the cookie alone; the access token may
		// already be expired.
		r.Post("/auth/refresh", authHandler.Refresh)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Post("/break/start", attendanceHandler.StartBreak)
				r.Post("/break/end", attendanceHandler.EndBreak)

				r.Get("/my/timesheet", attendanceHandler.GetMyTimesheet)

				r.Route("/applications", func(r chi.Router) {
					r.Post("/", attendanceHandler.SubmitApplication)
					r.Post("/withdraw", attendanceHandler.WithdrawApplication)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/{employeeID}/timesheet", attendanceHandler.GetTimesheet)
					r.Post("/{id}/approve", attendanceHandler.Approve)
					r.Post("/{id}/request-resubmission", attendanceHandler.RequestResubmission)
					r.Post("/{id}/absent", attendanceHandler.MarkAbsent)
					r.Post("/{id}/cancel-absence", attendanceHandler.CancelAbsence)
					r.Post("/{id}/cancellation", attendanceHandler.AnnotateCancellation)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/shift-plans", func(r chi.Router) {
					r.Post("/import", shiftPlanHandler.ImportSheet)
					r.Get("/", shiftPlanHandler.GetCalendar)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/{employeeID}/summary", payrollHandler.MonthlySummary)
				})
			})
		})
	})
	return r
}
