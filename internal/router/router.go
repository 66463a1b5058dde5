package router

import (
	"time"

	"dealerstock/internal/config"
	"dealerstock/internal/handler"
	"dealerstock/internal/middleware"
	"dealerstock/internal/model"
	"dealerstock/internal/repository"
	"dealerstock/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	saleSvc := service.NewSaleService(saleRepo, vehicleRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	reportsH := handler.NewReportsHandler(saleSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(rdb), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Register requires a valid token but no particular role
		v1.POST("/auth/register", authH.Register)

		v1.GET("/dashboard/stats", dashboardH.Stats)

		v1.GET("/vehicles", vehiclesH.List)
		v1.GET("/vehicles/:id", vehiclesH.Get)
		v1.POST("/vehicles", middleware.RequireRole(model.RoleAdmin, model.RoleStaff), vehiclesH.Create)
		v1.PUT("/vehicles/:id", middleware.RequireRole(model.RoleAdmin, model.RoleStaff), vehiclesH.Update)
		// Destructive operations — admin only
		v1.DELETE("/vehicles/:id", middleware.RequireRole(model.RoleAdmin), vehiclesH.Delete)

		v1.GET("/sales", salesH.List)
		v1.POST("/sales", middleware.RequireRole(model.RoleAdmin, model.RoleStaff), salesH.Record)
		v1.PUT("/sales/:id", middleware.RequireRole(model.RoleAdmin), salesH.Update)
		v1.DELETE("/sales/:id", middleware.RequireRole(model.RoleAdmin), salesH.Delete)

		v1.GET("/reports/sales/pdf", middleware.RequireRole(model.RoleAdmin), reportsH.SalesPDF)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
