package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product Model
type Product struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`            // Primary key (UUID)
	Name        string         `gorm:"size:255;not null" json:"name"`             // Display name
	Slug        string         `gorm:"size:255;uniqueIndex;not null" json:"slug"` // Derived from name when absent
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`                  // Regular price
	PromoPrice  *float64       `json:"promo_price"`                            // Optional discounted price
	Stock       int            `gorm:"default:0" json:"stock"`                 // Units in stock
	IsActive    bool           `gorm:"default:true" json:"is_active"`          // Active flag
	Weight      string         `gorm:"size:50;default:1kg" json:"weight"`      // Display weight, e.g. "1kg"
	// Plain column without a FK constraint; deleting a category leaves this id dangling
	CategoryID  string         `gorm:"type:uuid;index" json:"category_id"`
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"` // Cascade delete images with product
	CreatedAt   time.Time      `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// EffectivePrice is the promo price when set, the regular price otherwise
func (p *Product) EffectivePrice() float64 {
	if p.PromoPrice != nil {
		return *p.PromoPrice
	}
	return p.Price
}

// ProductImage Model
type ProductImage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`      // Primary key (UUID)
	ProductID string    `gorm:"type:uuid;index" json:"product_id"`   // Owning product
	ImageURL  string    `gorm:"size:500;not null" json:"image_url"`  // Where the image is served from
	IsMain    bool      `gorm:"default:false" json:"is_main"`        // Flagged-main image for display
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
