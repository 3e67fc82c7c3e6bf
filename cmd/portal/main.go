package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/srs-portal/internal/handler"
	"github.com/noah-isme/srs-portal/internal/repository"
	"github.com/noah-isme/srs-portal/internal/router"
	"github.com/noah-isme/srs-portal/internal/service"
	"github.com/noah-isme/srs-portal/internal/session"
	"github.com/noah-isme/srs-portal/pkg/cache"
	"github.com/noah-isme/srs-portal/pkg/config"
	"github.com/noah-isme/srs-portal/pkg/database"
	"github.com/noah-isme/srs-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close() //nolint:errcheck

	sessions := session.NewManager(session.NewRedisStore(redisClient), cfg.Session, logr)
	validate := validator.New()
	metrics := service.NewMetricsService()

	accountRepo := repository.NewAccountRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	lecturerRepo := repository.NewLecturerRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	semesterRepo := repository.NewSemesterRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	examResultRepo := repository.NewExamResultRepository(db)

	authSvc := service.NewAuthService(accountRepo, logr)
	studentSvc := service.NewStudentService(studentRepo, departmentRepo, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, studentRepo, courseRepo, semesterRepo, validate, logr)
	accountSvc := service.NewAccountService(accountRepo, studentRepo, lecturerRepo, validate, logr)
	lecturerSvc := service.NewLecturerService(courseRepo, enrollmentRepo, logr)
	portalSvc := service.NewPortalService(enrollmentRepo, examResultRepo, logr)
	exportSvc := service.NewExportService(studentRepo, enrollmentRepo, logr)

	engine := router.New(router.Deps{
		Config:   cfg,
		Logger:   logr,
		Sessions: sessions,
		Metrics:  metrics,

		Auth:       handler.NewAuthHandler(authSvc, sessions, metrics, logr),
		Students:   handler.NewStudentHandler(studentSvc, exportSvc, sessions, logr),
		Enrollment: handler.NewEnrollmentHandler(enrollmentSvc, sessions, logr),
		Accounts:   handler.NewAccountHandler(accountSvc, sessions, logr),
		Lecturer:   handler.NewLecturerHandler(lecturerSvc, exportSvc, sessions, logr),
		Portal:     handler.NewPortalHandler(portalSvc, sessions, logr),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := engine.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
