package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/srs-portal/internal/handler"
	"github.com/noah-isme/srs-portal/internal/middleware"
	"github.com/noah-isme/srs-portal/internal/models"
	"github.com/noah-isme/srs-portal/internal/service"
	"github.com/noah-isme/srs-portal/internal/session"
	"github.com/noah-isme/srs-portal/pkg/config"
	"github.com/noah-isme/srs-portal/pkg/logger"
	corsmiddleware "github.com/noah-isme/srs-portal/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/srs-portal/pkg/middleware/requestid"
)

// Deps carries everything the router needs to mount the portal.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Sessions *session.Manager
	Metrics  *service.MetricsService

	Auth       *handler.AuthHandler
	Students   *handler.StudentHandler
	Enrollment *handler.EnrollmentHandler
	Accounts   *handler.AccountHandler
	Lecturer   *handler.LecturerHandler
	Portal     *handler.PortalHandler
}

// New assembles the gin engine: base middleware chain, HTML templates and
// the role-gated route table.
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(d.Logger))
	r.Use(corsmiddleware.New(d.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(d.Metrics))

	r.LoadHTMLGlob(d.Config.Web.TemplatesGlob)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	r.GET("/", d.Auth.Home)
	r.GET("/login", d.Auth.LoginForm)
	r.POST("/login", d.Auth.Login)
	r.GET("/logout", d.Auth.Logout)

	secured := r.Group("", middleware.RequireSession(d.Sessions))
	secured.GET("/dashboard", d.Auth.Dashboard)

	staff := secured.Group("", middleware.RequireRoles(d.Sessions, models.RoleAdmin, models.RoleStaff))
	staff.GET("/students", d.Students.Page)
	staff.POST("/students", d.Students.Mutate)
	staff.GET("/students/export", d.Students.Export)
	staff.GET("/enrollment", d.Enrollment.Page)
	staff.POST("/enrollment", d.Enrollment.Enroll)

	admin := secured.Group("", middleware.RequireRoles(d.Sessions, models.RoleAdmin))
	admin.GET("/user-accounts", d.Accounts.Page)
	admin.POST("/user-accounts", d.Accounts.Mutate)

	lecturer := secured.Group("", middleware.RequireRoles(d.Sessions, models.RoleLecturer))
	lecturer.GET("/lecturer", d.Lecturer.Dashboard)
	lecturer.GET("/lecturer/export", d.Lecturer.ExportRoster)

	student := secured.Group("", middleware.RequireRoles(d.Sessions, models.RoleStudent))
	student.GET("/my-enrollments", d.Portal.MyEnrollments)
	student.GET("/my-results", d.Portal.MyResults)

	return r
}
