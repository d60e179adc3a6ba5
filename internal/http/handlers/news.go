package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/http/response"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/ctxutil"
	"github.com/cityfeedapp/cityfeed-backend/internal/services"
)

type NewsHandler struct {
	newsService services.NewsService
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (nh *NewsHandler) ListNews(c *gin.Context) {
	limit, offset := pagination(c)
	views, err := nh.newsService.ListPublished(c.Request.Context(), limit, offset)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "news_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"news": views})
}

func (nh *NewsHandler) GetNews(c *gin.Context) {
	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_news_id", err)
		return
	}
	view, err := nh.newsService.GetNews(c.Request.Context(), newsID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "news_load_failed", err)
		return
	}
	if view == nil {
		response.RespondError(c, http.StatusNotFound, "news_not_found", nil)
		return
	}
	response.RespondOK(c, view)
}

func (nh *NewsHandler) CreateNews(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Headline  string `json:"headline"`
		Body      string `json:"body"`
		SourceURL string `json:"source_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	item := &types.News{
		AuthorID:  rd.UserID,
		Headline:  req.Headline,
		Body:      req.Body,
		SourceURL: req.SourceURL,
	}
	created, err := nh.newsService.CreateNews(c.Request.Context(), item)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "news_create_failed", err)
		return
	}
	response.RespondOK(c, created)
}

func (nh *NewsHandler) UpdateNews(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_news_id", err)
		return
	}
	var req struct {
		Headline  *string `json:"headline"`
		Body      *string `json:"body"`
		SourceURL *string `json:"source_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	current, err := nh.newsService.GetNews(c.Request.Context(), newsID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "news_load_failed", err)
		return
	}
	if current == nil {
		response.RespondError(c, http.StatusNotFound, "news_not_found", nil)
		return
	}
	if current.News.AuthorID != rd.UserID {
		response.RespondError(c, http.StatusForbidden, "not_news_author", nil)
		return
	}
	item := current.News
	if req.Headline != nil {
		item.Headline = *req.Headline
	}
	if req.Body != nil {
		item.Body = *req.Body
	}
	if req.SourceURL != nil {
		item.SourceURL = *req.SourceURL
	}
	if err := nh.newsService.UpdateNews(c.Request.Context(), item); err != nil {
		response.RespondError(c, http.StatusBadRequest, "news_update_failed", err)
		return
	}
	response.RespondOK(c, item)
}

func (nh *NewsHandler) PublishNews(c *gin.Context) {
	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_news_id", err)
		return
	}
	if err := nh.newsService.PublishNews(c.Request.Context(), newsID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "news_publish_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (nh *NewsHandler) DeleteNews(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	newsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_news_id", err)
		return
	}
	current, err := nh.newsService.GetNews(c.Request.Context(), newsID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "news_load_failed", err)
		return
	}
	if current == nil {
		response.RespondError(c, http.StatusNotFound, "news_not_found", nil)
		return
	}
	if current.News.AuthorID != rd.UserID {
		response.RespondError(c, http.StatusForbidden, "not_news_author", nil)
		return
	}
	if err := nh.newsService.DeleteNews(c.Request.Context(), newsID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "news_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
