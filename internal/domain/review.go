package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review Model
type Review struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`    // Primary key (UUID)
	UserID    string    `gorm:"type:uuid;index" json:"user_id"`    // Reviewing user
	ProductID string    `gorm:"type:uuid;index" json:"product_id"` // Reviewed product
	Rating    int       `gorm:"not null" json:"rating"`            // 1 to 5, validated at the API layer
	Comment   string    `gorm:"type:text" json:"comment"`          // Optional free-form comment
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
