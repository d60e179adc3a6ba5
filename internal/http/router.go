package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/cityfeedapp/cityfeed-backend/internal/http/handlers"
	httpMW "github.com/cityfeedapp/cityfeed-backend/internal/http/middleware"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	UserHandler     *httpH.UserHandler
	PostHandler     *httpH.PostHandler
	NewsHandler     *httpH.NewsHandler
	BusinessHandler *httpH.BusinessHandler
	CommentHandler  *httpH.CommentHandler
	LocationHandler *httpH.LocationHandler
	SearchHandler   *httpH.SearchHandler
	MediaHandler    *httpH.MediaHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(otelgin.Middleware("cityfeed-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}

		// Public reads
		if cfg.PostHandler != nil {
			api.GET("/posts", cfg.PostHandler.ListPosts)
			api.GET("/posts/:id", cfg.PostHandler.GetPost)
		}
		if cfg.NewsHandler != nil {
			api.GET("/news", cfg.NewsHandler.ListNews)
			api.GET("/news/:id", cfg.NewsHandler.GetNews)
		}
		if cfg.BusinessHandler != nil {
			api.GET("/businesses", cfg.BusinessHandler.ListBusinesses)
			api.GET("/businesses/:id", cfg.BusinessHandler.GetBusiness)
		}
		if cfg.CommentHandler != nil {
			api.GET("/comments/:subject_type/:id", cfg.CommentHandler.ListComments)
		}
		if cfg.LocationHandler != nil {
			api.GET("/locations", cfg.LocationHandler.ListLocations)
			api.GET("/locations/:id", cfg.LocationHandler.GetLocation)
		}
		if cfg.SearchHandler != nil {
			api.GET("/search", cfg.SearchHandler.Search)
		}
		if cfg.UserHandler != nil {
			api.GET("/users/:id", cfg.UserHandler.GetProfile)
		}
		if cfg.MediaHandler != nil {
			api.POST("/media/resolve", cfg.MediaHandler.Resolve)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// User (me)
		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
			protected.PATCH("/me", cfg.UserHandler.UpdateProfile)
			protected.DELETE("/me", cfg.UserHandler.DeleteMe)
		}

		// Posts
		if cfg.PostHandler != nil {
			protected.POST("/posts", cfg.PostHandler.CreatePost)
			protected.PATCH("/posts/:id", cfg.PostHandler.UpdatePost)
			protected.DELETE("/posts/:id", cfg.PostHandler.DeletePost)
		}

		// News
		if cfg.NewsHandler != nil {
			protected.POST("/news", cfg.NewsHandler.CreateNews)
			protected.PATCH("/news/:id", cfg.NewsHandler.UpdateNews)
			protected.POST("/news/:id/publish", cfg.NewsHandler.PublishNews)
			protected.DELETE("/news/:id", cfg.NewsHandler.DeleteNews)
		}

		// Businesses
		if cfg.BusinessHandler != nil {
			protected.POST("/businesses", cfg.BusinessHandler.CreateBusiness)
			protected.PATCH("/businesses/:id", cfg.BusinessHandler.UpdateBusiness)
			protected.DELETE("/businesses/:id", cfg.BusinessHandler.DeleteBusiness)
		}

		// Comments
		if cfg.CommentHandler != nil {
			protected.POST("/comments", cfg.CommentHandler.CreateComment)
			protected.DELETE("/comments/:id", cfg.CommentHandler.DeleteComment)
		}

		// Locations
		if cfg.LocationHandler != nil {
			protected.POST("/locations", cfg.LocationHandler.CreateLocation)
		}

		// Media management
		if cfg.MediaHandler != nil {
			protected.POST("/media", cfg.MediaHandler.Attach)
			protected.DELETE("/media/:id", cfg.MediaHandler.Detach)
			protected.POST("/media/reorder", cfg.MediaHandler.Reorder)
		}
	}

	return r
}
