package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses accepted by the order service.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order represents a customer order. The coupon columns are a snapshot taken
// when the order was placed.
type Order struct {
	Base
	Code        string          `json:"code" gorm:"type:varchar(50);uniqueIndex"`
	CustomerID  *uuid.UUID      `json:"customerId" gorm:"type:uuid"`
	FullName    string          `json:"fullName" gorm:"type:varchar(255)"`
	Email       string          `json:"email" gorm:"type:varchar(255)"`
	Phone       string          `json:"phone" gorm:"type:varchar(20)"`
	Address     string          `json:"address" gorm:"type:varchar(500)"`
	Note        string          `json:"note" gorm:"type:text"`
	Status      string          `json:"status" gorm:"type:varchar(20)"`
	TotalItem   int             `json:"totalItem"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(18,2)"`

	CouponID      *uuid.UUID      `json:"couponId" gorm:"type:uuid"`
	CouponCode    string          `json:"couponCode" gorm:"type:varchar(50)"`
	CouponName    string          `json:"couponName" gorm:"type:varchar(255)"`
	CouponPercent bool            `json:"couponPercent"`
	CouponValue   decimal.Decimal `json:"couponValue" gorm:"type:decimal(18,2)"`

	Details []OrderDetail `json:"details" gorm:"-"`
}

func (Order) TableName() string { return "orders" }

// OrderDetail is one line of an order. Price is the product price at the
// time the order was placed.
type OrderDetail struct {
	Base
	OrderID     uuid.UUID       `json:"orderId" gorm:"type:uuid;index"`
	ProductID   uuid.UUID       `json:"productId" gorm:"type:uuid"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(18,2)"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(18,2)"`
}

func (OrderDetail) TableName() string { return "order_details" }

// Coupon is a discount code valid between StartDate and EndDate. Value is a
// percentage when HasPercent is set, a fixed amount otherwise.
type Coupon struct {
	Base
	Code       string          `json:"code" gorm:"type:varchar(50);uniqueIndex"`
	Name       string          `json:"name" gorm:"type:varchar(255)"`
	HasPercent bool            `json:"hasPercent"`
	Value      decimal.Decimal `json:"value" gorm:"type:decimal(18,2)"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
}

func (Coupon) TableName() string { return "coupons" }

// ValidAt reports whether the coupon can be applied at t.
func (c *Coupon) ValidAt(t time.Time) bool {
	return c.IsActive && !c.IsDeleted && !t.Before(c.StartDate) && !t.After(c.EndDate)
}

// Discount returns the amount the coupon takes off total.
func (c *Coupon) Discount(total decimal.Decimal) decimal.Decimal {
	if c.HasPercent {
		return total.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	}
	return c.Value
}
