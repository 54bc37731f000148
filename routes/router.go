package routes

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/croftbar/blogadmin/config"
	"github.com/croftbar/blogadmin/controllers"
	"github.com/croftbar/blogadmin/middleware"
	"github.com/croftbar/blogadmin/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = "./static"
	}
	r.Static("/static", staticDir)

	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "index.html"))
	})
	r.GET("/users", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "users.html"))
	})
	r.GET("/posts", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "posts.html"))
	})

	r.GET("/health", func(ctx *gin.Context) {
		utils.JSON(ctx, http.StatusOK, gin.H{"status": "ok"})
	})

	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg))

	api.GET("/users", userController.ListUsers)
	api.POST("/users", userController.CreateUser)
	api.GET("/users/:id", userController.GetUser)
	api.PATCH("/users/:id", userController.UpdateUser)
	api.DELETE("/users/:id", userController.DeleteUser)

	api.GET("/posts", postController.ListPosts)
	api.POST("/posts", postController.CreatePost)
	api.GET("/posts/:id", postController.GetPost)
	api.PATCH("/posts/:id", postController.UpdatePost)
	api.DELETE("/posts/:id", postController.DeletePost)

	api.GET("/stats", statsController.GetStats)

	r.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, "api route not found")
			return
		}
		if strings.HasPrefix(path, "/static/") {
			utils.Error(ctx, http.StatusNotFound, "static asset not found")
			return
		}
		ctx.Status(http.StatusOK)
		ctx.File(filepath.Join(staticDir, "index.html"))
	})

	return r
}
