// Package router assembles the gin engine: ambient middleware, operational endpoints
// and the admin API routes.
package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/course-admin-api/api/swagger"
	"github.com/noah-isme/course-admin-api/internal/handler"
	"github.com/noah-isme/course-admin-api/internal/middleware"
	"github.com/noah-isme/course-admin-api/internal/repository"
	"github.com/noah-isme/course-admin-api/internal/service"
	"github.com/noah-isme/course-admin-api/pkg/config"
	"github.com/noah-isme/course-admin-api/pkg/idgen"
	"github.com/noah-isme/course-admin-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-admin-api/pkg/middleware/requestid"
)

// Dependencies are the process wide resources the routes are built from.
type Dependencies struct {
	Config *config.Config
	DB     *sqlx.DB
	// Redis is optional; subject list caching stays off without it.
	Redis  redis.UniversalClient
	Logger *zap.Logger
	// IDs overrides the subject id generator, mostly for tests.
	IDs idgen.Generator
}

// New wires repositories, services and handlers and returns the engine.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS))

	var pinger handler.Pinger
	if deps.DB != nil {
		pinger = deps.DB
	}
	ops := handler.NewMetricsHandler(metricsSvc, pinger)
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	if metricsSvc != nil {
		r.GET("/metrics", ops.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(deps.DB)
	categoryRepo := repository.NewCategoryRepository(deps.DB)
	subjectRepo := repository.NewSubjectRepository(deps.DB)
	enrollmentRepo := repository.NewEnrollmentRepository(deps.DB)
	schemaRepo := repository.NewSchemaRepository(deps.DB)

	cacheEnabled := cfg.Subjects.CacheEnabled && deps.Redis != nil
	var cacheRepo service.CacheRepository
	if deps.Redis != nil {
		cacheRepo = repository.NewCacheRepository(deps.Redis)
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Subjects.CacheTTL, logr, cacheEnabled)

	ids := deps.IDs
	if ids == nil {
		ids = idgen.New(service.SubjectIDPrefix)
	}

	userSvc := service.NewUserService(userRepo, metricsSvc, logr)
	categorySvc := service.NewCategoryService(categoryRepo, validate, metricsSvc, logr)
	subjectSvc := service.NewSubjectService(subjectRepo, ids, cacheSvc, validate, metricsSvc, logr)
	exportSvc := service.NewExportService(subjectSvc)
	debugSvc := service.NewDebugService(userRepo, enrollmentRepo, schemaRepo, validate, metricsSvc, logr)

	users := handler.NewUserHandler(userSvc)
	categories := handler.NewCategoryHandler(categorySvc)
	subjects := handler.NewSubjectHandler(subjectSvc, exportSvc)
	debug := handler.NewDebugHandler(debugSvc)

	api := r.Group(prefix(cfg.APIPrefix))

	jsonRoutes := api.Group("")
	jsonRoutes.Use(middleware.ErrorBoundary(middleware.RenderJSON))
	{
		jsonRoutes.PATCH("/admin/users/:id", users.Approve)
		jsonRoutes.PUT("/admin/users/:id", users.Update)
		jsonRoutes.DELETE("/admin/users/:id", users.Delete)

		jsonRoutes.PUT("/categories/:id", categories.Update)
		jsonRoutes.DELETE("/categories/:id", categories.Delete)

		jsonRoutes.GET("/subjects", subjects.List)
		jsonRoutes.POST("/subjects", subjects.Create)
		jsonRoutes.GET("/subjects/export", subjects.Export)
		jsonRoutes.PUT("/subjects/:id", subjects.Update)
		jsonRoutes.DELETE("/subjects/:id", subjects.Delete)
	}

	if cfg.Debug.Enabled {
		debugRoutes := api.Group("/debug")
		debugRoutes.Use(middleware.ErrorBoundary(middleware.RenderText))
		debugRoutes.GET("/check_db", debug.CheckDB)
		debugRoutes.Any("/migrate_courses", debug.MigrateCourses)
	}

	logr.Info("routes registered",
		zap.String("prefix", prefix(cfg.APIPrefix)),
		zap.Bool("debug_routes", cfg.Debug.Enabled),
		zap.Bool("subject_cache", cacheEnabled),
	)
	return r
}

func prefix(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
