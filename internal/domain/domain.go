package domain

import (
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/auth"
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/content"
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/media"
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/user"
)

type User = user.User
type UserToken = auth.UserToken

type Location = content.Location
type Business = content.Business
type Post = content.Post
type News = content.News
type Comment = content.Comment

const (
	CommentSubjectPost     = content.CommentSubjectPost
	CommentSubjectNews     = content.CommentSubjectNews
	CommentSubjectBusiness = content.CommentSubjectBusiness
)

var ValidCommentSubject = content.ValidCommentSubject

type MediaRecord = media.Record
type MediaTag = media.Tag
type ResourceType = media.ResourceType
