package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cityfeedapp/cityfeed-backend/internal/http/response"
	"github.com/cityfeedapp/cityfeed-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
	view, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "profile_load_failed", err)
		return
	}
	if view == nil {
		response.RespondError(c, http.StatusNotFound, "user_not_found", nil)
		return
	}
	response.RespondOK(c, view)
}

func (uh *UserHandler) GetProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	view, err := uh.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "profile_load_failed", err)
		return
	}
	if view == nil {
		response.RespondError(c, http.StatusNotFound, "user_not_found", nil)
		return
	}
	response.RespondOK(c, view)
}

func (uh *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Bio       string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := uh.userService.UpdateProfile(c.Request.Context(), req.FirstName, req.LastName, req.Bio); err != nil {
		response.RespondError(c, http.StatusBadRequest, "profile_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (uh *UserHandler) DeleteMe(c *gin.Context) {
	if err := uh.userService.DeleteMe(c.Request.Context()); err != nil {
		response.RespondError(c, http.StatusBadRequest, "account_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
