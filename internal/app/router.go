package app

import (
	"github.com/gin-gonic/gin"

	apphttp "github.com/cityfeedapp/cityfeed-backend/internal/http"
	httpMW "github.com/cityfeedapp/cityfeed-backend/internal/http/middleware"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, h Handlers, authMW *httpMW.AuthMiddleware) *gin.Engine {
	log.Info("Wiring router...")
	return apphttp.NewRouter(apphttp.RouterConfig{
		Log:             log,
		AuthHandler:     h.Auth,
		AuthMiddleware:  authMW,
		UserHandler:     h.User,
		PostHandler:     h.Post,
		NewsHandler:     h.News,
		BusinessHandler: h.Business,
		CommentHandler:  h.Comment,
		LocationHandler: h.Location,
		SearchHandler:   h.Search,
		MediaHandler:    h.Media,
		HealthHandler:   h.Health,
	})
}
