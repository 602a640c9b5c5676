package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products.
type Category struct {
	Base
	Name        string `json:"name" gorm:"type:varchar(255)"`
	Description string `json:"description" gorm:"type:text"`
	ImageUrl    string `json:"imageUrl" gorm:"type:varchar(500)"`
}

func (Category) TableName() string { return "categories" }

// Product represents a product in the store.
type Product struct {
	Base
	Name               string          `json:"name" gorm:"type:varchar(255)"`
	Description        string          `json:"description" gorm:"type:text"`
	ContentHTML        string          `json:"contentHtml" gorm:"type:text"`
	ImageUrl           string          `json:"imageUrl" gorm:"type:varchar(500)"`
	CategoryID         uuid.UUID       `json:"categoryId" gorm:"type:uuid;index"`
	Price              decimal.Decimal `json:"price" gorm:"type:decimal(18,2)"`
	RatingScore        decimal.Decimal `json:"ratingScore" gorm:"type:decimal(18,2)"`
	SaleCount          int             `json:"saleCount"`
	DisplayOrder       int             `json:"displayOrder"`
	IsFeatured         bool            `json:"isFeatured"`
	HasDisplayHomePage bool            `json:"hasDisplayHomePage"`
}

func (Product) TableName() string { return "products" }
