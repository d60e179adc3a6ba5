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

type BusinessHandler struct {
	businessService services.BusinessService
}

func NewBusinessHandler(businessService services.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

func (bh *BusinessHandler) ListBusinesses(c *gin.Context) {
	limit, offset := pagination(c)
	views, err := bh.businessService.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "business_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"businesses": views})
}

func (bh *BusinessHandler) GetBusiness(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_business_id", err)
		return
	}
	view, err := bh.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "business_load_failed", err)
		return
	}
	if view == nil {
		response.RespondError(c, http.StatusNotFound, "business_not_found", nil)
		return
	}
	response.RespondOK(c, view)
}

func (bh *BusinessHandler) CreateBusiness(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Name        string     `json:"name"`
		Description string     `json:"description"`
		Website     string     `json:"website"`
		Phone       string     `json:"phone"`
		LocationID  *uuid.UUID `json:"location_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	business := &types.Business{
		OwnerID:     rd.UserID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Phone:       req.Phone,
		LocationID:  req.LocationID,
	}
	created, err := bh.businessService.CreateBusiness(c.Request.Context(), business)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "business_create_failed", err)
		return
	}
	response.RespondOK(c, created)
}

func (bh *BusinessHandler) UpdateBusiness(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_business_id", err)
		return
	}
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	current, err := bh.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "business_load_failed", err)
		return
	}
	if current == nil {
		response.RespondError(c, http.StatusNotFound, "business_not_found", nil)
		return
	}
	var req struct {
		Name        *string    `json:"name"`
		Description *string    `json:"description"`
		Website     *string    `json:"website"`
		Phone       *string    `json:"phone"`
		LocationID  *uuid.UUID `json:"location_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	business := current.Business
	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.Website != nil {
		business.Website = *req.Website
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.LocationID != nil {
		business.LocationID = req.LocationID
	}
	if err := bh.businessService.UpdateBusiness(c.Request.Context(), rd.UserID, business); err != nil {
		response.RespondError(c, http.StatusForbidden, "business_update_failed", err)
		return
	}
	response.RespondOK(c, business)
}

func (bh *BusinessHandler) DeleteBusiness(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_business_id", err)
		return
	}
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	if err := bh.businessService.DeleteBusiness(c.Request.Context(), rd.UserID, businessID); err != nil {
		response.RespondError(c, http.StatusForbidden, "business_delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
