// Package mapper converts between entities and DTOs. Every conversion is a
// plain function; audit fields only flow from entity to DTO.
package mapper

import (
	"shop/internal/dto"
	"shop/internal/models"

	"github.com/samber/lo"
)

func auditOf(b models.Base) dto.Audit {
	return dto.Audit{
		ID:            b.ID,
		CreatedBy:     b.CreatedBy,
		CreatedByName: b.CreatedByName,
		CreateByDate:  b.CreateByDate,
		UpdatedBy:     b.UpdatedBy,
		UpdatedByName: b.UpdatedByName,
		UpdateByDate:  b.UpdateByDate,
		IsActive:      b.IsActive,
		IsDeleted:     b.IsDeleted,
	}
}

func baseOf(a dto.Audit) models.Base {
	return models.Base{ID: a.ID, IsActive: a.IsActive}
}

// ToDTOs maps a slice with convert.
func ToDTOs[E, D any](items []E, convert func(*E) D) []D {
	return lo.Map(items, func(item E, _ int) D { return convert(&item) })
}

func ProductToDTO(p *models.Product) dto.ProductDTO {
	return dto.ProductDTO{
		Audit:              auditOf(p.Base),
		Name:               p.Name,
		Description:        p.Description,
		ContentHTML:        p.ContentHTML,
		ImageUrl:           p.ImageUrl,
		CategoryID:         p.CategoryID,
		Price:              p.Price,
		RatingScore:        p.RatingScore,
		SaleCount:          p.SaleCount,
		DisplayOrder:       p.DisplayOrder,
		IsFeatured:         p.IsFeatured,
		HasDisplayHomePage: p.HasDisplayHomePage,
	}
}

func ProductFromDTO(d *dto.ProductDTO) *models.Product {
	return &models.Product{
		Base:               baseOf(d.Audit),
		Name:               d.Name,
		Description:        d.Description,
		ContentHTML:        d.ContentHTML,
		ImageUrl:           d.ImageUrl,
		CategoryID:         d.CategoryID,
		Price:              d.Price,
		RatingScore:        d.RatingScore,
		SaleCount:          d.SaleCount,
		DisplayOrder:       d.DisplayOrder,
		IsFeatured:         d.IsFeatured,
		HasDisplayHomePage: d.HasDisplayHomePage,
	}
}

func CategoryToDTO(c *models.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		Audit:       auditOf(c.Base),
		Name:        c.Name,
		Description: c.Description,
		ImageUrl:    c.ImageUrl,
	}
}

func CategoryFromDTO(d *dto.CategoryDTO) *models.Category {
	return &models.Category{
		Base:        baseOf(d.Audit),
		Name:        d.Name,
		Description: d.Description,
		ImageUrl:    d.ImageUrl,
	}
}

func OrderToDTO(o *models.Order) dto.OrderDTO {
	return dto.OrderDTO{
		Audit:         auditOf(o.Base),
		Code:          o.Code,
		CustomerID:    o.CustomerID,
		FullName:      o.FullName,
		Email:         o.Email,
		Phone:         o.Phone,
		Address:       o.Address,
		Note:          o.Note,
		Status:        o.Status,
		TotalItem:     o.TotalItem,
		TotalAmount:   o.TotalAmount,
		CouponCode:    o.CouponCode,
		CouponName:    o.CouponName,
		CouponPercent: o.CouponPercent,
		CouponValue:   o.CouponValue,
		Details:       ToDTOs(o.Details, OrderDetailToDTO),
	}
}

func OrderDetailToDTO(d *models.OrderDetail) dto.OrderDetailDTO {
	return dto.OrderDetailDTO{
		ID:          d.ID,
		ProductID:   d.ProductID,
		Price:       d.Price,
		Quantity:    d.Quantity,
		TotalAmount: d.TotalAmount,
	}
}

func UserToDTO(u *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
