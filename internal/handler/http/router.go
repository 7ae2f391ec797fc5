package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/makerhq/timeclock-backend-go/internal/config"
	"github.com/makerhq/timeclock-backend-go/internal/domain/user"
	"github.com/makerhq/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	masterHandler MasterHandler,
	employeeHandler EmployeeHandler,
	punchHandler PunchHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Route("/callback", func(r chi.Router) {
					r.Get("/google", authHandler.OAuthCallbackGoogle)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Hardware terminals authenticate with a static API key, not a JWT.
		r.Route("/terminal", func(r chi.Router) {
			r.Use(middleware.TerminalAuth(cfg.Terminal.APIKey))
			r.Post("/punches", punchHandler.TerminalPunch)
			r.Get("/employees", employeeHandler.BiometricSync)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Put("/{id}/role", userHandler.UpdateUserRole)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionMasterManage))
				r.Get("/", masterHandler.ListDepartments)
				r.Post("/", masterHandler.CreateDepartment)
				r.Get("/{id}", masterHandler.GetDepartment)
				r.Put("/{id}", masterHandler.UpdateDepartment)
				r.Delete("/{id}", masterHandler.DeleteDepartment)
			})

			r.Route("/positions", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionMasterManage))
				r.Get("/", masterHandler.ListPositions)
				r.Post("/", masterHandler.CreatePosition)
				r.Get("/{id}", masterHandler.GetPosition)
				r.Put("/{id}", masterHandler.UpdatePosition)
				r.Delete("/{id}", masterHandler.DeletePosition)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionMasterManage))
				r.Get("/", masterHandler.ListShifts)
				r.Post("/", masterHandler.CreateShift)
				r.Get("/{id}", masterHandler.GetShift)
				r.Put("/{id}", masterHandler.UpdateShift)
				r.Delete("/{id}", masterHandler.DeleteShift)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", employeeHandler.ListEmployees)
					r.Get("/{id}", employeeHandler.GetEmployee)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeImport))
					r.Post("/import", employeeHandler.ImportEmployees)
				})
			})

			r.Route("/punches", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPunchViewAll))
					r.Get("/", punchHandler.ListPunches)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPunchAdjust))
					r.Post("/adjust", punchHandler.AdjustPunch)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsViewOwn))
					r.Get("/timesheet/my", reportHandler.GetMyTimesheet)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsViewAll))
					r.Get("/timesheet", reportHandler.GetTimesheet)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionDataExport))
					r.Get("/timesheet/export", reportHandler.ExportTimesheetXLSX)
					r.Get("/punches/export", reportHandler.ExportPunchesCSV)
					r.Get("/employees/export", reportHandler.ExportEmployeesCSV)
					r.Get("/employees/export/xlsx", reportHandler.ExportEmployeesXLSX)
					r.Get("/departments/export", reportHandler.ExportDepartmentsCSV)
					r.Get("/positions/export", reportHandler.ExportPositionsCSV)
					r.Get("/shifts/export", reportHandler.ExportShiftsCSV)
				})
			})
		})
	})
	return r
}
