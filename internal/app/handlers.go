package app

import (
	"gorm.io/gorm"

	httpH "github.com/cityfeedapp/cityfeed-backend/internal/http/handlers"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type Handlers struct {
	Auth     *httpH.AuthHandler
	User     *httpH.UserHandler
	Post     *httpH.PostHandler
	News     *httpH.NewsHandler
	Business *httpH.BusinessHandler
	Comment  *httpH.CommentHandler
	Location *httpH.LocationHandler
	Search   *httpH.SearchHandler
	Media    *httpH.MediaHandler
	Health   *httpH.HealthHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     httpH.NewAuthHandler(s.Auth),
		User:     httpH.NewUserHandler(s.User),
		Post:     httpH.NewPostHandler(s.Post),
		News:     httpH.NewNewsHandler(s.News),
		Business: httpH.NewBusinessHandler(s.Business),
		Comment:  httpH.NewCommentHandler(s.Comment),
		Location: httpH.NewLocationHandler(s.Location),
		Search:   httpH.NewSearchHandler(s.Search),
		Media:    httpH.NewMediaHandler(s.Media),
		Health:   httpH.NewHealthHandler(db),
	}
}
