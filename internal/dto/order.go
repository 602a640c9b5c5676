package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	CustomerID *uuid.UUID         `json:"customerId"`
	FullName   string             `json:"fullName" validate:"required,max=255"`
	Email      string             `json:"email" validate:"required,email"`
	Phone      string             `json:"phone" validate:"required,max=20"`
	Address    string             `json:"address" validate:"required,max=500"`
	Note       string             `json:"note"`
	CouponCode string             `json:"couponCode" validate:"max=50"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type OrderDetailDTO struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type OrderDTO struct {
	Audit
	Code          string           `json:"code"`
	CustomerID    *uuid.UUID       `json:"customerId"`
	FullName      string           `json:"fullName"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	Note          string           `json:"note"`
	Status        string           `json:"status"`
	TotalItem     int              `json:"totalItem"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	CouponCode    string           `json:"couponCode,omitempty"`
	CouponName    string           `json:"couponName,omitempty"`
	CouponPercent bool             `json:"couponPercent"`
	CouponValue   decimal.Decimal  `json:"couponValue"`
	Details       []OrderDetailDTO `json:"details,omitempty"`
}

// UpdateOrderStatusRequest changes the status of an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}
