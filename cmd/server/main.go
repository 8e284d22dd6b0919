package main

import (
	"log"
	"net/http"

	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/config"
	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/database"
	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/handlers"
	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/logging"
	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/metrics"
	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/middleware"
	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/services"

	_ "github.com/melanieHachet/skills-integrate-mcp-with-copilot/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Mergington High School API
// @version         1.0
// @description     API for viewing and signing up for extracurricular activities
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	godotenv.Load()

	cfg := config.Load()

	logger, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if err := database.Seed(db, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	activityService := services.NewActivityService(db)

	authHandler := handlers.NewAuthHandler(authService)
	activityHandler := handlers.NewActivityHandler(activityService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/static", cfg.StaticDir)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
	}

	activities := r.Group("/activities")
	{
		activities.GET("", activityHandler.List)

		protected := activities.Group("")
		protected.Use(middleware.JWTAuth(authService), middleware.RequireTeacher())
		{
			protected.POST("/:name/signup", activityHandler.Signup)
			protected.DELETE("/:name/unregister", activityHandler.Unregister)
		}
	}

	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
