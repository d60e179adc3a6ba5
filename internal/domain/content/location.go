package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Location struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name    string    `gorm:"not null;column:name" json:"name"`
	City    string    `gorm:"column:city;index" json:"city"`
	Region  string    `gorm:"column:region" json:"region"`
	Country string    `gorm:"column:country;index" json:"country"`
	Lat     float64   `gorm:"column:lat" json:"lat"`
	Lng     float64   `gorm:"column:lng" json:"lng"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Location) TableName() string { return "location" }
