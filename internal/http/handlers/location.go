package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/http/response"
	"github.com/cityfeedapp/cityfeed-backend/internal/services"
)

type LocationHandler struct {
	locationService services.LocationService
}

func NewLocationHandler(locationService services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

func (lh *LocationHandler) ListLocations(c *gin.Context) {
	if city := c.Query("city"); city != "" {
		locations, err := lh.locationService.ListByCity(c.Request.Context(), city)
		if err != nil {
			response.RespondError(c, http.StatusInternalServerError, "location_list_failed", err)
			return
		}
		response.RespondOK(c, gin.H{"locations": locations})
		return
	}
	limit, offset := pagination(c)
	locations, err := lh.locationService.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "location_list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"locations": locations})
}

func (lh *LocationHandler) GetLocation(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_location_id", err)
		return
	}
	location, err := lh.locationService.GetLocation(c.Request.Context(), locationID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "location_load_failed", err)
		return
	}
	if location == nil {
		response.RespondError(c, http.StatusNotFound, "location_not_found", nil)
		return
	}
	response.RespondOK(c, location)
}

func (lh *LocationHandler) CreateLocation(c *gin.Context) {
	var req struct {
		Name    string  `json:"name"`
		City    string  `json:"city"`
		Region  string  `json:"region"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	location := &types.Location{
		Name:    req.Name,
		City:    req.City,
		Region:  req.Region,
		Country: req.Country,
		Lat:     req.Lat,
		Lng:     req.Lng,
	}
	created, err := lh.locationService.CreateLocation(c.Request.Context(), location)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "location_create_failed", err)
		return
	}
	response.RespondOK(c, created)
}
