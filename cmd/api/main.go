package main

import (
	"fmt"
	"net/http"

	"github.com/makerhq/timeclock-backend-go/internal/config"
	appHTTP "github.com/makerhq/timeclock-backend-go/internal/handler/http"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/database"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/oauth"
	"github.com/makerhq/timeclock-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/makerhq/timeclock-backend-go/internal/service/auth"
	employeeService "github.com/makerhq/timeclock-backend-go/internal/service/employee"
	exportService "github.com/makerhq/timeclock-backend-go/internal/service/export"
	"github.com/makerhq/timeclock-backend-go/internal/service/master"
	punchService "github.com/makerhq/timeclock-backend-go/internal/service/punch"
	timesheetService "github.com/makerhq/timeclock-backend-go/internal/service/timesheet"
	userService "github.com/makerhq/timeclock-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.GoogleLoginEnabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	engine := timesheetService.NewEngine()

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository, googleService)
	userSvc := userService.NewUserService(userRepo)
	masterSvc := master.NewMasterService(departmentRepo, positionRepo, shiftRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo, positionRepo, shiftRepo)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(engine, employeeRepo, shiftRepo, punchRepo)
	exportSvc := exportService.NewExportService(employeeRepo, punchRepo, departmentRepo, positionRepo, shiftRepo, timesheetSvc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	reportHandler := appHTTP.NewReportHandler(timesheetSvc, exportSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		userHandler,
		masterHandler,
		employeeHandler,
		punchHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
