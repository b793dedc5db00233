package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category Model
type Category struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`             // Primary key (UUID)
	Name      string    `gorm:"size:150;not null" json:"name"`              // Display name
	Slug      string    `gorm:"size:160;uniqueIndex;not null" json:"slug"`  // URL-safe unique identifier
	IsActive  bool      `gorm:"default:true" json:"is_active"`              // Active flag
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
