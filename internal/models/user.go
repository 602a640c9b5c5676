package models

import "github.com/google/uuid"

// User represents a user of the store.
type User struct {
	Base
	Username   string     `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Email      string     `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password   string     `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	FirstName  string     `json:"firstName" gorm:"type:varchar(35)"`
	LastName   string     `json:"lastName" gorm:"type:varchar(35)"`
	ImageUrl   string     `json:"imageUrl" gorm:"type:varchar(500)"`
	Type       int        `json:"type"`
	CustomerID *uuid.UUID `json:"customerId" gorm:"type:uuid"`
}

func (User) TableName() string { return "users" }

// Customer is the buyer profile, optionally linked to a User.
type Customer struct {
	Base
	FirstName string     `json:"firstName" gorm:"type:varchar(35)"`
	LastName  string     `json:"lastName" gorm:"type:varchar(35)"`
	Email     string     `json:"email" gorm:"type:varchar(90)"`
	Phone     string     `json:"phone" gorm:"type:varchar(11)"`
	Address   string     `json:"address" gorm:"type:varchar(90)"`
	UserID    *uuid.UUID `json:"userId" gorm:"type:uuid"`
}

func (Customer) TableName() string { return "customers" }

// CustomerWishList links a customer to a product they saved.
type CustomerWishList struct {
	Base
	CustomerID uuid.UUID `json:"customerId" gorm:"type:uuid;index"`
	ProductID  uuid.UUID `json:"productId" gorm:"type:uuid"`
}

func (CustomerWishList) TableName() string { return "customer_wish_lists" }
