package api

import (
	"net/http" // HTTP status codes

	"grosly/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Payment reference generation
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// OrderItemInput is one line of an order request
type OrderItemInput struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required,gt=0"` // Price snapshot at order time
}

// CreateOrderRequest creates an order from a list of item snapshots
type CreateOrderRequest struct {
	UserID    string           `json:"user_id" binding:"required,uuid"`
	AddressID string           `json:"address_id" binding:"required,uuid"`
	Items     []OrderItemInput `json:"items" binding:"required,dive"` // At least one line
}

// CreatePaymentRequest records a payment against an order
type CreatePaymentRequest struct {
	OrderID string  `json:"order_id" binding:"required,uuid"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Method  string  `json:"method"` // Defaults to cash on delivery
}

// CreateOrderHandler creates an order and its item rows in one transaction.
// The total is the sum of price*quantity over the supplied items and never
// changes afterwards. A failure on any row rolls the whole order back.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Delivery address must exist and belong to the ordering user
		var address domain.Address
		if err := db.First(&address, "id = ? AND user_id = ?", req.AddressID, req.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		var total float64
		for _, item := range req.Items {
			total += item.Price * float64(item.Quantity)
		}
		order := domain.Order{
			UserID:      req.UserID,
			AddressID:   req.AddressID,
			TotalAmount: total,
			Status:      domain.OrderStatusPending,
		}
		// Order row and item rows commit together or not at all
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err // Rollback
			}
			for _, item := range req.Items {
				orderItem := domain.OrderItem{
					OrderID:   order.ID,
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Price:     item.Price,
				}
				if err := tx.Create(&orderItem).Error; err != nil {
					return err // Rollback, including the order row
				}
				order.Items = append(order.Items, orderItem)
			}
			return nil // Commit
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":    req.UserID,
				"address_id": req.AddressID,
				"error":      err.Error(),
			}).Error("Order creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"order_id":     order.ID,
			"user_id":      order.UserID,
			"total_amount": order.TotalAmount,
			"items":        len(order.Items),
		}).Info("Order created")
		c.JSON(http.StatusCreated, order)
	}
}

// CreatePaymentHandler records a pending payment for an order. The amount is
// taken as supplied; it is not reconciled against the order total. A second
// payment for the same order trips the unique constraint on order_id.
func CreatePaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Paid order must exist
		var order domain.Order
		if err := db.First(&order, "id = ?", req.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		method := req.Method
		if method == "" {
			method = domain.PaymentMethodDelivery
		}
		payment := domain.Payment{
			OrderID:   req.OrderID,
			Amount:    req.Amount,
			Method:    method,
			Status:    domain.PaymentStatusPending,
			Reference: "PAY-" + uuid.NewString(), // Unique reference
		}
		if err := db.Create(&payment).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment already exists for this order"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"payment_id": payment.ID,
			"order_id":   payment.OrderID,
			"amount":     payment.Amount,
			"method":     payment.Method,
		}).Info("Payment created")
		c.JSON(http.StatusCreated, payment)
	}
}
