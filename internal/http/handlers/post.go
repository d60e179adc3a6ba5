package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/http/response"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/ctxutil"
	"github.com/cityfeedapp/cityfeed-backend/internal/services"
)

type PostHandler struct {
	postService services.PostService
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (ph *PostHandler) ListPosts(c *gin.Context) {
	limit, offset := pagination(c)
	views, err := ph.postService.ListPublished(c.Request.Context(), limit, offset)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "post_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"posts": views})
}

func (ph *PostHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}
	view, err := ph.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "post_load_failed", err)
		return
	}
	if view == nil {
		response.RespondError(c, http.StatusNotFound, "post_not_found", nil)
		return
	}
	response.RespondOK(c, view)
}

func (ph *PostHandler) CreatePost(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Title      string     `json:"title"`
		Body       string     `json:"body"`
		Published  bool       `json:"published"`
		LocationID *uuid.UUID `json:"location_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	post := &types.Post{
		AuthorID:   rd.UserID,
		Title:      req.Title,
		Body:       req.Body,
		Published:  req.Published,
		LocationID: req.LocationID,
	}
	created, err := ph.postService.CreatePost(c.Request.Context(), post)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "post_create_failed", err)
		return
	}
	response.RespondOK(c, created)
}

func (ph *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}
	current, err := ph.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "post_load_failed", err)
		return
	}
	if current == nil {
		response.RespondError(c, http.StatusNotFound, "post_not_found", nil)
		return
	}
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || current.Post.AuthorID != rd.UserID {
		response.RespondError(c, http.StatusForbidden, "not_post_author", nil)
		return
	}
	var req struct {
		Title     *string `json:"title"`
		Body      *string `json:"body"`
		Published *bool   `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	post := current.Post
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	if err := ph.postService.UpdatePost(c.Request.Context(), post); err != nil {
		response.RespondError(c, http.StatusBadRequest, "post_update_failed", err)
		return
	}
	response.RespondOK(c, post)
}

func (ph *PostHandler) DeletePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_post_id", err)
		return
	}
	current, err := ph.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "post_load_failed", err)
		return
	}
	if current == nil {
		response.RespondError(c, http.StatusNotFound, "post_not_found", nil)
		return
	}
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || current.Post.AuthorID != rd.UserID {
		response.RespondError(c, http.StatusForbidden, "not_post_author", nil)
		return
	}
	if err := ph.postService.DeletePost(c.Request.Context(), postID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "post_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
