package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"staffdir-system/config"
	"staffdir-system/internal/database"
	"staffdir-system/internal/gateway/handlers"
	"staffdir-system/internal/gateway/middleware"
	companyhandler "staffdir-system/internal/services/company/handler"
	userhandler "staffdir-system/internal/services/user/handler"
	"staffdir-system/internal/storage"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient := config.NewRedisClient(cfg.Redis)

	files, err := storage.NewFileStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to prepare upload dir: %v", err)
	}

	companies := companyhandler.NewCompanyHandler(db, redisClient)
	users := userhandler.NewUserHandler(db, redisClient, files)

	r := setupRouter(cfg, db, redisClient, companies, users)

	port := ":" + cfg.Server.Port
	log.Printf("Starting server on port %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg config.Config, db *gorm.DB, redisClient *redis.Client, companies *companyhandler.CompanyHandler, users *userhandler.UserHandler) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(cfg.Server.RateLimit))

	companyHandler := handlers.NewCompanyHTTPHandler(companies)
	userHandler := handlers.NewUserHTTPHandler(users)

	api := r.Group("/api/v1")
	{
		companyGroup := api.Group("/companies")
		{
			companyGroup.POST("", middleware.JWTAuth([]byte(cfg.Auth.JWTSecret)), companyHandler.CreateCompany)
			companyGroup.GET("", companyHandler.ListCompanies)
			companyGroup.GET("/:id", companyHandler.GetCompany)
		}

		userGroup := api.Group("/users")
		{
			userGroup.POST("", userHandler.CreateUser)
			userGroup.GET("", userHandler.ListUsers)
			userGroup.GET("/:id", userHandler.GetUser)
			userGroup.PUT("/:id", userHandler.UpdateUser)
			userGroup.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	// Uploaded profile pictures are referenced by their stored path.
	r.Static("/"+cfg.Upload.Dir, cfg.Upload.Dir)

	r.GET("/health", healthCheckHandler(db, redisClient))

	return r
}

func healthCheckHandler(db *gorm.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		httpStatus := http.StatusOK

		services := gin.H{"database": "healthy", "cache": "healthy"}

		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			services["database"] = "unavailable"
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}

		if redisClient == nil {
			services["cache"] = "disabled"
		} else if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			services["cache"] = "unavailable"
			status = "degraded"
		}

		c.JSON(httpStatus, gin.H{
			"status":    status,
			"services":  services,
			"timestamp": time.Now(),
		})
	}
}
