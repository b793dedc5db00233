package domain

import (
	"time"

	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM library
)

// UserProfile Model
type UserProfile struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`     // Primary key (UUID)
	Password      string    `gorm:"not null" json:"-"`                  // Argon2id password hash, never serialized
	LastName      string    `gorm:"size:100;not null" json:"last_name"` // Last name
	FirstName     string    `gorm:"size:100;not null" json:"first_name"`
	Email         string    `gorm:"size:255;uniqueIndex;not null" json:"email"` // Login identity
	PhoneNumber   string    `gorm:"size:20" json:"phone_number"`
	Country       string    `gorm:"size:100;not null" json:"country"`
	DialCode      string    `gorm:"size:10" json:"dial_code"`     // Country dialing code
	AddressLine   string    `gorm:"size:255" json:"address_line"` // Free-form contact address
	TermsAccepted bool      `gorm:"default:true" json:"terms_accepted"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (u *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
