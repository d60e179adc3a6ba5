package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/media"
	"github.com/cityfeedapp/cityfeed-backend/internal/http/response"
	"github.com/cityfeedapp/cityfeed-backend/internal/services"
)

type MediaHandler struct {
	mediaService services.MediaService
}

func NewMediaHandler(mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Resolve serves the batched lookup: the client sends every descriptor for
// the page it is rendering and gets the derived maps back.
func (mh *MediaHandler) Resolve(c *gin.Context) {
	var req struct {
		Descriptors []struct {
			ResourceType string           `json:"resource_type"`
			ResourceIDs  []uuid.UUID      `json:"resource_ids"`
			Tags         []types.MediaTag `json:"tags"`
		} `json:"descriptors"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	descriptors := make([]media.ResourceDescriptor, 0, len(req.Descriptors))
	for _, d := range req.Descriptors {
		descriptors = append(descriptors, media.ResourceDescriptor{
			Type: types.ResourceType(d.ResourceType),
			IDs:  d.ResourceIDs,
			Tags: d.Tags,
		})
	}
	maps, err := mh.mediaService.Resolve(c.Request.Context(), nil, descriptors)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, maps)
}

func (mh *MediaHandler) Attach(c *gin.Context) {
	var req struct {
		ResourceType string            `json:"resource_type"`
		ResourceID   uuid.UUID         `json:"resource_id"`
		Tag          string            `json:"tag"`
		Position     int               `json:"position"`
		URL          string            `json:"url"`
		ThumbnailURL *string           `json:"thumbnail_url"`
		Variants     map[string]string `json:"variants"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	record := &types.MediaRecord{
		ResourceType: types.ResourceType(req.ResourceType),
		ResourceID:   req.ResourceID,
		Tag:          types.MediaTag(req.Tag),
		Position:     req.Position,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
	}
	if len(req.Variants) > 0 {
		variants := datatypes.JSONMap{}
		for k, v := range req.Variants {
			variants[k] = v
		}
		record.Variants = variants
	}
	created, err := mh.mediaService.Attach(c.Request.Context(), nil, record)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "media_attach_failed", err)
		return
	}
	response.RespondOK(c, created)
}

func (mh *MediaHandler) Detach(c *gin.Context) {
	mediaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_media_id", err)
		return
	}
	if err := mh.mediaService.Detach(c.Request.Context(), nil, []uuid.UUID{mediaID}); err != nil {
		response.RespondError(c, http.StatusBadRequest, "media_detach_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (mh *MediaHandler) Reorder(c *gin.Context) {
	var req struct {
		ResourceType string      `json:"resource_type"`
		ResourceID   uuid.UUID   `json:"resource_id"`
		OrderedIDs   []uuid.UUID `json:"ordered_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	err := mh.mediaService.Reorder(c.Request.Context(), nil, types.ResourceType(req.ResourceType), req.ResourceID, req.OrderedIDs)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "media_reorder_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
