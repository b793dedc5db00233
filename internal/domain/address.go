package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address Model
type Address struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`  // Primary key (UUID)
	UserID      string    `gorm:"type:uuid;index" json:"user_id"`  // Owning user
	FullName    string    `gorm:"size:255" json:"full_name"`       // Recipient name
	Phone       string    `gorm:"size:20" json:"phone"`
	City        string    `gorm:"size:100" json:"city"`
	Country     string    `gorm:"size:100" json:"country"`
	AddressLine string    `gorm:"size:255" json:"address_line"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
