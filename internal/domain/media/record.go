package media

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ResourceType names the kind of entity a media record is attached to.
type ResourceType string

const (
	ResourceUserProfile ResourceType = "user_profile"
	ResourceNews        ResourceType = "news"
	ResourceBusiness    ResourceType = "business"
	ResourcePost        ResourceType = "post"
	ResourceComment     ResourceType = "comment"
)

func (rt ResourceType) Valid() bool {
	switch rt {
	case ResourceUserProfile, ResourceNews, ResourceBusiness, ResourcePost, ResourceComment:
		return true
	default:
		return false
	}
}

func ParseResourceType(s string) (ResourceType, error) {
	rt := ResourceType(s)
	if !rt.Valid() {
		return "", fmt.Errorf("unknown resource type %q", s)
	}
	return rt, nil
}

// Tag is the semantic role of a media attachment.
type Tag string

const (
	TagProfilePic    Tag = "profile_pic"
	TagBanner        Tag = "banner"
	TagLogo          Tag = "logo"
	TagFeaturedImage Tag = "featured_image"
	TagGallery       Tag = "gallery"
	TagAttachment    Tag = "attachment"
)

func (t Tag) Valid() bool {
	switch t {
	case TagProfilePic, TagBanner, TagLogo, TagFeaturedImage, TagGallery, TagAttachment:
		return true
	default:
		return false
	}
}

func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown media tag %q", s)
	}
	return t, nil
}

// VariantPublic is preferred over the canonical URL when present.
const VariantPublic = "public"

// Record is one stored media asset attached to exactly one owning entity.
type Record struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ResourceType ResourceType `gorm:"column:resource_type;not null;index:idx_media_resource,priority:1" json:"resource_type"`
	ResourceID   uuid.UUID    `gorm:"type:uuid;column:resource_id;not null;index:idx_media_resource,priority:2" json:"resource_id"`
	Tag          Tag          `gorm:"column:tag;not null;index:idx_media_resource,priority:3" json:"tag"`

	// Position orders records sharing the same (resource_type, resource_id, tag).
	Position int `gorm:"column:position;not null;default:0" json:"position"`

	URL          string            `gorm:"column:url;not null" json:"url"`
	ThumbnailURL *string           `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	Variants     datatypes.JSONMap `gorm:"column:variants;type:jsonb" json:"variants,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Record) TableName() string { return "media_record" }

// DisplayURL resolves the URL a consumer should render: the "public" variant
// when one exists, otherwise the canonical URL.
func (r *Record) DisplayURL() string {
	if r.Variants != nil {
		if v, ok := r.Variants[VariantPublic]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return r.URL
}
