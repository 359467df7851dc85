package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/curriculum-backend/internal/config"
	"github.com/stemsi/curriculum-backend/internal/handler"
	"github.com/stemsi/curriculum-backend/internal/middleware"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/response"
	"github.com/stemsi/curriculum-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Admin       *handler.AdminHandler
	Student     *handler.StudentHandler
	Course      *handler.CourseHandler
	Program     *handler.ProgramHandler
	Exchange    *handler.ExchangeHandler
	Record      *handler.RecordHandler
	Eligibility *handler.EligibilityHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// ctx bounds background work owned by the router, such as rate limiter sweeps.
func SetupRouter(
	ctx context.Context,
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware(log))
	router.Use(middleware.Brotli())

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	authLimiter := middleware.NewRateLimiter(ctx, cfg.AuthRateLimit, time.Minute)
	requireAdmin := []gin.HandlerFunc{
		middleware.RequireAdminJWT(authService),
		middleware.CheckSingleSession(authService),
	}

	auth := router.Group("/api/v1/auth/admin")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.AdminLogin)
		auth.POST("/logout", append(requireAdmin, handlers.Auth.AdminLogout)...)
		auth.GET("/me", append(requireAdmin, handlers.Auth.GetAdminProfile)...)
	}

	// ─── 2. Admin Group (JWT + Single Session + RBAC) ──────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(requireAdmin...)

	read := middleware.RequirePermission(model.PermissionCurriculumRead)
	write := middleware.RequirePermission(model.PermissionCurriculumWrite)
	{
		// Staff accounts
		adminAPI.POST("/users", middleware.RequirePermission(model.PermissionAdminsWrite), handlers.Admin.CreateAdmin)

		// Students
		adminAPI.GET("/students", read, handlers.Student.ListStudents)
		adminAPI.GET("/students/:student_id", read, handlers.Student.GetStudent)
		adminAPI.PUT("/students/:student_id", write, handlers.Student.UpsertStudent)
		adminAPI.DELETE("/students/:student_id", write, handlers.Student.DeleteStudent)

		// Completion records of a student
		adminAPI.GET("/students/:student_id/enrollments", read, handlers.Record.ListEnrollments)
		adminAPI.POST("/students/:student_id/enrollments", write, handlers.Record.AddEnrollment)
		adminAPI.GET("/students/:student_id/participations", read, handlers.Record.ListParticipations)
		adminAPI.POST("/students/:student_id/participations", write, handlers.Record.AddParticipation)
		adminAPI.GET("/students/:student_id/attendances", read, handlers.Record.ListAttendances)
		adminAPI.POST("/students/:student_id/attendances", write, handlers.Record.AddAttendance)
		adminAPI.DELETE("/enrollments/:id", write, handlers.Record.DeleteEnrollment)
		adminAPI.DELETE("/participations/:id", write, handlers.Record.DeleteParticipation)
		adminAPI.DELETE("/attendances/:id", write, handlers.Record.DeleteAttendance)

		// Eligibility
		adminAPI.GET("/students/:student_id/eligibility",
			middleware.RequirePermission(model.PermissionEligibilityRead),
			middleware.NoStore(),
			handlers.Eligibility.Evaluate,
		)

		// Courses
		adminAPI.GET("/courses", read, handlers.Course.ListCourses)
		adminAPI.GET("/courses/:course_id", read, handlers.Course.GetCourse)
		adminAPI.PUT("/courses/:course_id", write, handlers.Course.UpsertCourse)
		adminAPI.DELETE("/courses/:course_id", write, handlers.Course.DeleteCourse)

		// Programs
		adminAPI.GET("/programs", read, handlers.Program.ListPrograms)
		adminAPI.GET("/programs/:program_id", read, handlers.Program.GetProgram)
		adminAPI.PUT("/programs/:program_id", write, handlers.Program.UpsertProgram)
		adminAPI.DELETE("/programs/:program_id", write, handlers.Program.DeleteProgram)

		// Exchanges
		adminAPI.GET("/exchanges", read, handlers.Exchange.ListExchanges)
		adminAPI.GET("/exchanges/:exchange_id", read, handlers.Exchange.GetExchange)
		adminAPI.PUT("/exchanges/:exchange_id", write, handlers.Exchange.UpsertExchange)
		adminAPI.DELETE("/exchanges/:exchange_id", write, handlers.Exchange.DeleteExchange)
	}

	return router
}
