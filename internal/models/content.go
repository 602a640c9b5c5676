package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Banner struct {
	Base
	Title        string `json:"title" gorm:"type:varchar(255)"`
	Description  string `json:"description" gorm:"type:text"`
	ImageUrl     string `json:"imageUrl" gorm:"type:varchar(500)"`
	Link         string `json:"link" gorm:"type:varchar(500)"`
	DisplayOrder int    `json:"displayOrder"`
}

func (Banner) TableName() string { return "banners" }

type Blog struct {
	Base
	Title       string          `json:"title" gorm:"type:varchar(255)"`
	ShortDes    string          `json:"shortDes" gorm:"type:varchar(500)"`
	ContentHTML string          `json:"contentHtml" gorm:"type:text"`
	ImageUrl    string          `json:"imageUrl" gorm:"type:varchar(500)"`
	RatingScore decimal.Decimal `json:"ratingScore" gorm:"type:decimal(18,2)"`
}

func (Blog) TableName() string { return "blogs" }

// Comment is a rating left on a product or blog. EntityType names the target.
type Comment struct {
	Base
	EntityID   uuid.UUID  `json:"entityId" gorm:"type:uuid;index"`
	EntityType string     `json:"entityType" gorm:"type:varchar(50)"`
	CustomerID *uuid.UUID `json:"customerId" gorm:"type:uuid"`
	FullName   string     `json:"fullName" gorm:"type:varchar(255)"`
	Content    string     `json:"content" gorm:"type:text"`
	Rating     int        `json:"rating"`
}

func (Comment) TableName() string { return "comments" }

type File struct {
	Base
	Name       string    `json:"name" gorm:"type:varchar(255)"`
	Url        string    `json:"url" gorm:"type:varchar(500)"`
	FileExt    string    `json:"fileExt" gorm:"type:varchar(20)"`
	EntityID   uuid.UUID `json:"entityId" gorm:"type:uuid;index"`
	EntityType string    `json:"entityType" gorm:"type:varchar(50)"`
	TypeUpload int       `json:"typeUpload"`
}

func (File) TableName() string { return "files" }

type PageContent struct {
	Base
	Title       string `json:"title" gorm:"type:varchar(255)"`
	ShortDes    string `json:"shortDes" gorm:"type:varchar(500)"`
	Description string `json:"description" gorm:"type:text"`
	ImageUrl    string `json:"imageUrl" gorm:"type:varchar(500)"`
	SortOrder   int    `json:"order"`
}

func (PageContent) TableName() string { return "page_contents" }

type SocialMedia struct {
	Base
	Title        string `json:"title" gorm:"type:varchar(255)"`
	Link         string `json:"link" gorm:"type:varchar(500)"`
	IconUrl      string `json:"iconUrl" gorm:"type:varchar(500)"`
	DisplayOrder int    `json:"displayOrder"`
}

func (SocialMedia) TableName() string { return "social_medias" }

// Contact is a message sent through the storefront contact form.
type Contact struct {
	Base
	FirstName   string `json:"firstName" gorm:"type:varchar(35)"`
	LastName    string `json:"lastName" gorm:"type:varchar(35)"`
	Email       string `json:"email" gorm:"type:varchar(90)"`
	PhoneNumber string `json:"phoneNumber" gorm:"type:varchar(20)"`
	Message     string `json:"message" gorm:"type:text"`
	Status      int    `json:"status"`
}

func (Contact) TableName() string { return "contacts" }

type InformationWebsite struct {
	Base
	Title       string `json:"title" gorm:"type:varchar(255)"`
	Description string `json:"description" gorm:"type:text"`
	Logo        string `json:"logo" gorm:"type:varchar(500)"`
	Address     string `json:"address" gorm:"type:varchar(500)"`
	Phone       string `json:"phone" gorm:"type:varchar(20)"`
	Email       string `json:"email" gorm:"type:varchar(255)"`
	Fax         string `json:"fax" gorm:"type:varchar(20)"`
}

func (InformationWebsite) TableName() string { return "information_websites" }
