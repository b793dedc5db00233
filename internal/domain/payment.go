package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentStatus is the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

// PaymentMethodDelivery is the default cash-on-delivery method
const PaymentMethodDelivery = "Livraison"

// Payment Model
type Payment struct {
	ID        string        `gorm:"type:uuid;primaryKey" json:"id"`                        // Primary key (UUID)
	OrderID   string        `gorm:"type:uuid;uniqueIndex" json:"order_id"`                 // At most one payment per order
	Amount    float64       `gorm:"not null" json:"amount"`                                // Amount charged
	Method    string        `gorm:"size:50;default:Livraison" json:"method"`               // Payment method
	Status    PaymentStatus `gorm:"type:varchar(30);default:pending" json:"status"`        // Settlement state
	Reference string        `gorm:"size:100;uniqueIndex" json:"reference"`                 // Unique payment reference
	CreatedAt time.Time     `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
