package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BannerDTO struct {
	Audit
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description"`
	ImageUrl     string `json:"imageUrl" validate:"required,max=500"`
	Link         string `json:"link" validate:"omitempty,max=500"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
}

type BlogDTO struct {
	Audit
	Title       string          `json:"title" validate:"required,max=255"`
	ShortDes    string          `json:"shortDes" validate:"max=500"`
	ContentHTML string          `json:"contentHtml"`
	ImageUrl    string          `json:"imageUrl" validate:"max=500"`
	RatingScore decimal.Decimal `json:"ratingScore" validate:"gte=0,lte=5"`
}

type CouponDTO struct {
	Audit
	Code       string          `json:"code" validate:"required,max=50"`
	Name       string          `json:"name" validate:"required,max=255"`
	HasPercent bool            `json:"hasPercent"`
	Value      decimal.Decimal `json:"value" validate:"gt=0"`
	StartDate  time.Time       `json:"startDate" validate:"required"`
	EndDate    time.Time       `json:"endDate" validate:"required,gtfield=StartDate"`
}

type CommentDTO struct {
	Audit
	EntityID   uuid.UUID  `json:"entityId" validate:"required"`
	EntityType string     `json:"entityType" validate:"required,oneof=product blog"`
	CustomerID *uuid.UUID `json:"customerId"`
	FullName   string     `json:"fullName" validate:"required,max=255"`
	Content    string     `json:"content" validate:"required"`
	Rating     int        `json:"rating" validate:"gte=1,lte=5"`
}

type ContactDTO struct {
	Audit
	FirstName   string `json:"firstName" validate:"required,max=35"`
	LastName    string `json:"lastName" validate:"required,max=35"`
	Email       string `json:"email" validate:"required,email,max=90"`
	PhoneNumber string `json:"phoneNumber" validate:"max=20"`
	Message     string `json:"message" validate:"required"`
	Status      int    `json:"status" validate:"gte=0"`
}

type CustomerDTO struct {
	Audit
	FirstName string     `json:"firstName" validate:"required,max=35"`
	LastName  string     `json:"lastName" validate:"required,max=35"`
	Email     string     `json:"email" validate:"required,email,max=90"`
	Phone     string     `json:"phone" validate:"max=11"`
	Address   string     `json:"address" validate:"max=90"`
	UserID    *uuid.UUID `json:"userId"`
}

type PageContentDTO struct {
	Audit
	Title       string `json:"title" validate:"required,max=255"`
	ShortDes    string `json:"shortDes" validate:"max=500"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl" validate:"max=500"`
	Order       int    `json:"order" validate:"gte=0"`
}

type SocialMediaDTO struct {
	Audit
	Title        string `json:"title" validate:"required,max=255"`
	Link         string `json:"link" validate:"required,max=500"`
	IconUrl      string `json:"iconUrl" validate:"max=500"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
}

type InformationWebsiteDTO struct {
	Audit
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Logo        string `json:"logo" validate:"max=500"`
	Address     string `json:"address" validate:"max=500"`
	Phone       string `json:"phone" validate:"max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Fax         string `json:"fax" validate:"max=20"`
}

// FileDTO describes an uploaded file attached to a product or blog.
type FileDTO struct {
	Audit
	Name       string    `json:"name" validate:"required,max=255"`
	Url        string    `json:"url" validate:"required,max=500"`
	FileExt    string    `json:"fileExt" validate:"max=20"`
	EntityID   uuid.UUID `json:"entityId" validate:"required"`
	EntityType string    `json:"entityType" validate:"required,oneof=product blog"`
	TypeUpload int       `json:"typeUpload" validate:"gte=0"`
}

type CustomerWishListDTO struct {
	Audit
	CustomerID uuid.UUID `json:"customerId" validate:"required"`
	ProductID  uuid.UUID `json:"productId" validate:"required"`
}
