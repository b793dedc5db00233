package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart Model
type Cart struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`                              // Primary key (UUID)
	UserID    string     `gorm:"type:uuid;uniqueIndex" json:"user_id"`                        // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`  // Cascade delete items with cart
	CreatedAt time.Time  `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CartItem Model
type CartItem struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`    // Primary key (UUID)
	CartID    string  `gorm:"type:uuid;index" json:"cart_id"`    // Owning cart
	ProductID string  `gorm:"type:uuid" json:"product_id"`       // Referenced product
	Quantity  int     `gorm:"not null" json:"quantity"`          // Always > 0, validated at the API layer
	Price     float64 `gorm:"not null" json:"price"`             // Price snapshot at add time
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
