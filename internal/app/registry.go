package app

import (
	"context"
	"time"

	"go-hrms/internal/absence"
	"go-hrms/internal/auth"
	"go-hrms/internal/course"
	"go-hrms/internal/currency"
	"go-hrms/internal/diagnostics"
	"go-hrms/internal/employee"
	"go-hrms/internal/evaluation"
	"go-hrms/internal/exchangerate"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/payroll"
	"go-hrms/internal/promotion"
	"go-hrms/internal/rbac"
	"go-hrms/internal/reward"
	"go-hrms/internal/salarycategory"
	"go-hrms/internal/serviceyear"
	"go-hrms/internal/settings"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const payslipBaseURL = "/files/payslips"

func registerModules(router *gin.Engine, cfg Config, infra infrastructure) error {
	logger := zap.L().Named("app.registry")
	db, gormDB, rdb := infra.sqlDB, infra.gormDB, infra.rdb

	// --- Repositories ---
	absenceRepo := absence.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	courseRepo := course.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	evaluationRepo := evaluation.NewRepository(gormDB)
	exchangeRateRepo := exchangerate.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	promotionRepo := promotion.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository(gormDB)
	rewardRepo := reward.NewRepository(gormDB)
	serviceYearRepo := serviceyear.NewRepository(gormDB)
	settingsRepo := settings.NewFileRepository(cfg.SettingsFile)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := rbacService.LoadPolicy(ctx); err != nil {
		return err
	}

	// --- Services ---
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo, []byte(cfg.JWTSecret))
	exchangeRateService := exchangerate.NewService(db, exchangeRateRepo, outboxRepo, rdb)
	converter := currency.NewConverter(exchangeRateService)
	preferences := currency.NewPreferenceStore(rdb)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rdb)
	payrollService := payroll.NewService(db, payrollRepo, outboxRepo, payroll.PayslipStorage{
		Dir:     cfg.PayslipDir,
		BaseURL: payslipBaseURL,
	})
	absenceService := absence.NewService(db, absenceRepo)
	courseService := course.NewService(db, courseRepo)
	evaluationService := evaluation.NewService(db, evaluationRepo)
	leaveService := leave.NewService(db, leaveRepo)
	promotionService := promotion.NewService(db, promotionRepo)
	rewardService := reward.NewService(db, rewardRepo)
	serviceYearService := serviceyear.NewService(db, serviceYearRepo)
	settingsService := settings.NewService(settingsRepo, settings.NewSQLServerPinger())
	diagnosticsService := diagnostics.NewService([]diagnostics.Check{
		diagnostics.DatabaseCheck(db),
		diagnostics.RedisCheck(rdb),
		diagnostics.KafkaCheck(cfg.KafkaBroker, connection.PingKafka),
		diagnostics.ActiveRateCheck(exchangeRateService),
		diagnostics.SettingsFileCheck(settingsRepo.Path()),
	})

	created, err := userService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info("initial admin account created", zap.String("email", cfg.AdminEmail))
	}

	// --- Handlers ---
	absenceHandler := absence.NewHandler(absenceService)
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	courseHandler := course.NewHandler(courseService)
	currencyHandler := currency.NewHandler(converter, preferences)
	diagnosticsHandler := diagnostics.NewHandler(diagnosticsService)
	employeeHandler := employee.NewHandler(employeeService, rdb)
	evaluationHandler := evaluation.NewHandler(evaluationService)
	exchangeRateHandler := exchangerate.NewHandler(exchangeRateService, rdb)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandler(payrollService, preferences, rdb)
	promotionHandler := promotion.NewHandler(promotionService)
	rbacHandler := rbac.NewHandler(rbacService)
	rewardHandler := reward.NewHandler(rewardService)
	serviceYearHandler := serviceyear.NewHandler(serviceYearService)
	settingsHandler := settings.NewHandler(settingsService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	authMW := middleware.AuthMiddleware([]byte(cfg.JWTSecret))

	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L().Named("http")))

	files := router.Group(payslipBaseURL, authMW, middleware.RBACAuthorize(rbacService, "payroll", "read"))
	files.Static("/", cfg.PayslipDir)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		user.RegisterRoutes(api, userHandler, rbacService, authMW)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, authMW)

		exchangerate.RegisterRoutes(api, exchangeRateHandler, rbacService, authMW, rdb)
		currency.RegisterRoutes(api, currencyHandler, authMW)
		salarycategory.RegisterRoutes(api, authMW)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, authMW, rdb)

		employee.RegisterRoutes(api, employeeHandler, rbacService, authMW, rdb)
		course.RegisterRoutes(api, courseHandler, rbacService, authMW)
		evaluation.RegisterRoutes(api, evaluationHandler, rbacService, authMW)
		promotion.RegisterRoutes(api, promotionHandler, rbacService, authMW)
		reward.RegisterRoutes(api, rewardHandler, rbacService, authMW)
		leave.RegisterRoutes(api, leaveHandler, rbacService, authMW)
		absence.RegisterRoutes(api, absenceHandler, rbacService, authMW)
		serviceyear.RegisterRoutes(api, serviceYearHandler, rbacService, authMW)

		settings.RegisterRoutes(api, settingsHandler, rbacService, authMW)
		diagnostics.RegisterRoutes(api, diagnosticsHandler, rbacService, authMW)
	}

	return nil
}
