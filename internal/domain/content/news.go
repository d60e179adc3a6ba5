package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/domain/user"
)

type News struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;column:author_id;not null;index" json:"author_id"`
	Author      *user.User `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`
	Headline    string     `gorm:"not null;column:headline" json:"headline"`
	Body        string     `gorm:"column:body" json:"body"`
	SourceURL   string     `gorm:"column:source_url" json:"source_url"`
	PublishedAt *time.Time `gorm:"column:published_at;index" json:"published_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (News) TableName() string { return "news_item" }
