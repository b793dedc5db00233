package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting payment
	OrderStatusPaid      OrderStatus = "paid"      // Payment confirmed
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the order
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before fulfilment
)

// Order Model
type Order struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"`                               // Primary key (UUID)
	UserID      string      `gorm:"type:uuid;index" json:"user_id"`                               // Ordering user
	AddressID   string      `gorm:"type:uuid" json:"address_id"`                                  // Delivery address
	TotalAmount float64     `gorm:"not null" json:"total_amount"`                                 // Sum of item price*quantity, fixed at creation
	Status      OrderStatus `gorm:"type:varchar(30);default:pending" json:"status"`               // Lifecycle state
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`  // Cascade delete items with order
	Payment     *Payment    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment"` // At most one payment per order
	CreatedAt   time.Time   `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem Model
type OrderItem struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`  // Primary key (UUID)
	OrderID   string  `gorm:"type:uuid;index" json:"order_id"` // Owning order
	ProductID string  `gorm:"type:uuid" json:"product_id"`     // Product snapshot reference
	Quantity  int     `gorm:"not null" json:"quantity"`        // Quantity ordered
	Price     float64 `gorm:"not null" json:"price"`           // Price snapshot at order time
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
