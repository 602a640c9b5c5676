package models

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the identity and audit columns shared by every entity.
type Base struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`

	CreatedBy     uuid.UUID `json:"createdBy" gorm:"type:uuid"`
	CreatedByName string    `json:"createdByName" gorm:"type:varchar(255)"`
	CreateByDate  time.Time `json:"createByDate"`

	UpdatedBy     uuid.UUID `json:"updatedBy" gorm:"type:uuid"`
	UpdatedByName string    `json:"updatedByName" gorm:"type:varchar(255)"`
	UpdateByDate  time.Time `json:"updateByDate"`

	DeletedBy     uuid.UUID `json:"deletedBy" gorm:"type:uuid"`
	DeletedByName string    `json:"deletedByName" gorm:"type:varchar(255)"`
	DeleteByDate  time.Time `json:"deleteByDate"`

	IsActive  bool `json:"isActive"`
	IsDeleted bool `json:"isDeleted" gorm:"index"`
}

// Entity is implemented by every model through the embedded Base.
type Entity interface {
	GetBase() *Base
	TableName() string
}

func (b *Base) GetBase() *Base { return b }

// MarkCreated stamps the created audit fields.
func (b *Base) MarkCreated(by uuid.UUID, name string, at time.Time) {
	b.CreatedBy = by
	b.CreatedByName = name
	b.CreateByDate = at
}

// MarkUpdated stamps the updated audit fields.
func (b *Base) MarkUpdated(by uuid.UUID, name string, at time.Time) {
	b.UpdatedBy = by
	b.UpdatedByName = name
	b.UpdateByDate = at
}

// MarkDeleted flags the row as soft-deleted and stamps the deleted audit fields.
func (b *Base) MarkDeleted(by uuid.UUID, name string, at time.Time) {
	b.IsDeleted = true
	b.DeletedBy = by
	b.DeletedByName = name
	b.DeleteByDate = at
}

// KeepCreated copies the created audit fields from a stored row so that an
// update never rewrites them.
func (b *Base) KeepCreated(stored *Base) {
	b.CreatedBy = stored.CreatedBy
	b.CreatedByName = stored.CreatedByName
	b.CreateByDate = stored.CreateByDate
}

// Live reports whether the row is not soft-deleted.
func (b *Base) Live() bool { return !b.IsDeleted }

// All returns one zero value of every model, in dependency order.
// Used for schema migration and store registration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Customer{},
		&Category{},
		&Product{},
		&Coupon{},
		&Order{},
		&OrderDetail{},
		&CustomerWishList{},
		&Comment{},
		&Banner{},
		&Blog{},
		&File{},
		&PageContent{},
		&SocialMedia{},
		&Contact{},
		&InformationWebsite{},
	}
}
