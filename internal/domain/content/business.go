package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/domain/user"
)

type Business struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;column:owner_id;not null;index" json:"owner_id"`
	Owner       *user.User `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	Name        string     `gorm:"not null;column:name;index" json:"name"`
	Description string     `gorm:"column:description" json:"description"`
	Website     string     `gorm:"column:website" json:"website"`
	Phone       string     `gorm:"column:phone" json:"phone"`
	LocationID  *uuid.UUID `gorm:"type:uuid;column:location_id;index" json:"location_id,omitempty"`
	Location    *Location  `gorm:"foreignKey:LocationID;references:ID" json:"location,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Business) TableName() string { return "business" }
