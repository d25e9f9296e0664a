package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmstand/internal/config"
	"farmstand/internal/db"
	"farmstand/internal/handlers"
	"farmstand/internal/media"
	"farmstand/internal/repository"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}

	conn, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("opening database", zap.Error(err))
	}
	sqlDB, _ := conn.DB()
	defer sqlDB.Close()

	uploader, err := media.NewCloudinaryUploader(
		cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.UploadFolder)
	if err != nil {
		logger.Fatal("configuring media host", zap.Error(err))
	}

	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("fs_session", store))

	r.GET("/health", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	auth := handlers.NewAuthHandler(repository.NewUserRepo(conn), logger)
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/login", auth.Login)
	r.POST("/auth/logout", auth.Logout)

	products := handlers.NewProductHandler(
		repository.NewProductRepo(conn),
		repository.NewVendorRepo(conn),
		uploader,
		logger,
	)
	catalog := r.Group("/products", handlers.RequireSession())
	catalog.GET("", products.List)
	catalog.GET("/:productId", products.Get)
	catalog.POST("", products.Create)
	catalog.PUT("/:productId", products.Update)

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
