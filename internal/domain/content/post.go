package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/domain/user"
)

type Post struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuthorID   uuid.UUID  `gorm:"type:uuid;column:author_id;not null;index" json:"author_id"`
	Author     *user.User `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`
	Title      string     `gorm:"not null;column:title" json:"title"`
	Body       string     `gorm:"column:body" json:"body"`
	Published  bool       `gorm:"column:published;not null;default:false;index" json:"published"`
	LocationID *uuid.UUID `gorm:"type:uuid;column:location_id;index" json:"location_id,omitempty"`
	Location   *Location  `gorm:"foreignKey:LocationID;references:ID" json:"location,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Post) TableName() string { return "post" }
