package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is used for create, update and read. Name and Description are
// checked for blank values by the service before the struct tags run.
type ProductDTO struct {
	Audit
	Name               string          `json:"name" validate:"max=255"`
	Description        string          `json:"description"`
	ContentHTML        string          `json:"contentHtml"`
	ImageUrl           string          `json:"imageUrl" validate:"max=500"`
	CategoryID         uuid.UUID       `json:"categoryId"`
	Price              decimal.Decimal `json:"price" validate:"gte=0"`
	RatingScore        decimal.Decimal `json:"ratingScore" validate:"gte=0,lte=5"`
	SaleCount          int             `json:"saleCount" validate:"gte=0"`
	DisplayOrder       int             `json:"displayOrder" validate:"gte=0"`
	IsFeatured         bool            `json:"isFeatured"`
	HasDisplayHomePage bool            `json:"hasDisplayHomePage"`
}

// ProductSearchDTO holds optional product search criteria. Nil fields do not filter.
type ProductSearchDTO struct {
	Name       *string          `json:"name"`
	CategoryID *uuid.UUID       `json:"categoryId"`
	IsFeatured *bool            `json:"isFeatured"`
	IsActive   *bool            `json:"isActive"`
	MinPrice   *decimal.Decimal `json:"minPrice"`
	MaxPrice   *decimal.Decimal `json:"maxPrice"`
}

// CategoryDTO is used for create, update and read.
type CategoryDTO struct {
	Audit
	Name        string `json:"name" validate:"max=255"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl" validate:"max=500"`
}
