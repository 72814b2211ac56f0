package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/web"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	router := gin.New()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	// Ảnh lớn hơn MaxImageSize vẫn phải đọc được để báo lỗi trên form
	router.MaxMultipartMemory = 2 * storage.MaxImageSize

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Authenticate(c.JWTManager, c.UserService),
	)

	router.NoRoute(response.NotFound)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
	}

	router.GET("/media/*key", c.MediaHandler.Serve)

	setupAuthRoutes(router, c)
	setupPostRoutes(router, c)
	setupMemberRoutes(router, c)
	setupProfileRoutes(router, c)

	return router, nil
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	auth := router.Group("/auth")
	{
		auth.GET("/signup/", c.AuthHandler.SignupPage)
		auth.POST("/signup/", c.AuthHandler.Signup)
		auth.GET("/login/", c.AuthHandler.LoginPage)
		auth.POST("/login/", c.AuthHandler.Login)
		auth.GET("/logout/", c.AuthHandler.Logout)
		auth.POST("/logout/", c.AuthHandler.Logout)
	}
}

// ========================================
// PUBLIC POST ROUTES
// ========================================
func setupPostRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/",
		middleware.PageCache(c.Cache, shared.CacheKeyIndexPage, c.Config.Cache.IndexTTL),
		c.PostHandler.Index,
	)
	router.GET("/group/:slug/", c.GroupHandler.GroupPosts)
}

// ========================================
// LOGIN REQUIRED ROUTES
// ========================================
func setupMemberRoutes(router *gin.Engine, c *container.Container) {
	member := router.Group("/", middleware.LoginRequired())
	{
		member.GET("/new/", c.PostHandler.NewPage)
		member.POST("/new/", c.PostHandler.Create)
		member.GET("/follow/", c.FollowHandler.Feed)

		member.GET("/:username/:post_id/edit/", c.PostHandler.EditPage)
		member.POST("/:username/:post_id/edit/", c.PostHandler.Edit)
		member.GET("/:username/:post_id/comment", c.CommentHandler.AddComment)
		member.POST("/:username/:post_id/comment", c.CommentHandler.AddComment)

		member.GET("/:username/follow/", c.FollowHandler.Follow)
		member.POST("/:username/follow/", c.FollowHandler.Follow)
		member.GET("/:username/unfollow/", c.FollowHandler.Unfollow)
		member.POST("/:username/unfollow/", c.FollowHandler.Unfollow)
	}
}

// ========================================
// PROFILE ROUTES
// ========================================
func setupProfileRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/:username/", c.PostHandler.Profile)
	router.GET("/:username/:post_id/", c.PostHandler.Detail)
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"storage":   appCtx.Config.App.StorageType,
		}

		// Check database
		dbStatus := "ok"
		switch {
		case appCtx.Config.IsMemory():
			dbStatus = "memory"
		case appCtx.DB == nil || appCtx.DB.Pool == nil:
			dbStatus = "disconnected"
			health["status"] = "degraded"
		default:
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			} else if stats, err := appCtx.DB.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		// Check cache, lỗi cache không làm hỏng trang nên không degraded
		cacheStatus := "ok"
		if appCtx.Cache == nil {
			cacheStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				cacheStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
		}

		if health["status"] == "degraded" {
			response.ErrorResponse(c, http.StatusServiceUnavailable, "SERVICE_DEGRADED", "database: "+dbStatus)
			return
		}
		response.Success(c, http.StatusOK, health)
	}
}
