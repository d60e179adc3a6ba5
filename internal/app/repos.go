package app

import (
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type Repos struct {
	User      repos.UserRepo
	UserToken repos.UserTokenRepo
	Location  repos.LocationRepo
	Business  repos.BusinessRepo
	Post      repos.PostRepo
	News      repos.NewsRepo
	Comment   repos.CommentRepo
	Media     repos.MediaRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      repos.NewUserRepo(db, log),
		UserToken: repos.NewUserTokenRepo(db, log),
		Location:  repos.NewLocationRepo(db, log),
		Business:  repos.NewBusinessRepo(db, log),
		Post:      repos.NewPostRepo(db, log),
		News:      repos.NewNewsRepo(db, log),
		Comment:   repos.NewCommentRepo(db, log),
		Media:     repos.NewMediaRepo(db, log),
	}
}
