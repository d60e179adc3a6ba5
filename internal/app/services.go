package app

import (
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
	"github.com/cityfeedapp/cityfeed-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Media    services.MediaService
	Post     services.PostService
	News     services.NewsService
	Business services.BusinessService
	Comment  services.CommentService
	Location services.LocationService
	Search   services.SearchService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	mediaService := services.NewMediaService(db, log, r.Media)
	return Services{
		Auth:     services.NewAuthService(db, log, r.User, r.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		User:     services.NewUserService(db, log, r.User, r.UserToken, mediaService),
		Media:    mediaService,
		Post:     services.NewPostService(db, log, r.Post, r.Comment, mediaService),
		News:     services.NewNewsService(db, log, r.News, r.Comment, mediaService),
		Business: services.NewBusinessService(db, log, r.Business, r.Location, r.Comment, mediaService),
		Comment:  services.NewCommentService(db, log, r.Comment, mediaService),
		Location: services.NewLocationService(db, log, r.Location),
		Search:   services.NewSearchService(db, log, r.Post, r.News, r.Business, r.Location, mediaService),
	}
}
