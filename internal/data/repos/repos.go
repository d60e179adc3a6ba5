package repos

import (
	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos/auth"
	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos/content"
	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos/media"
	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos/user"
)

type UserRepo = user.UserRepo
type UserTokenRepo = auth.UserTokenRepo

type PostRepo = content.PostRepo
type NewsRepo = content.NewsRepo
type BusinessRepo = content.BusinessRepo
type CommentRepo = content.CommentRepo
type LocationRepo = content.LocationRepo

type MediaRepo = media.MediaRepo

var NewUserRepo = user.NewUserRepo
var NewUserTokenRepo = auth.NewUserTokenRepo
var NewPostRepo = content.NewPostRepo
var NewNewsRepo = content.NewNewsRepo
var NewBusinessRepo = content.NewBusinessRepo
var NewCommentRepo = content.NewCommentRepo
var NewLocationRepo = content.NewLocationRepo
var NewMediaRepo = media.NewMediaRepo
