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

type CommentHandler struct {
	commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (ch *CommentHandler) ListComments(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_subject_id", err)
		return
	}
	limit, offset := pagination(c)
	views, err := ch.commentService.ListForSubject(c.Request.Context(), c.Param("subject_type"), subjectID, limit, offset)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "comment_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"comments": views})
}

func (ch *CommentHandler) CreateComment(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		SubjectType string    `json:"subject_type"`
		SubjectID   uuid.UUID `json:"subject_id"`
		Body        string    `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	comment := &types.Comment{
		AuthorID:    rd.UserID,
		SubjectType: req.SubjectType,
		SubjectID:   req.SubjectID,
		Body:        req.Body,
	}
	created, err := ch.commentService.CreateComment(c.Request.Context(), comment)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "comment_create_failed", err)
		return
	}
	response.RespondOK(c, created)
}

func (ch *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_comment_id", err)
		return
	}
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	if err := ch.commentService.DeleteComment(c.Request.Context(), rd.UserID, commentID); err != nil {
		response.RespondError(c, http.StatusForbidden, "comment_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
