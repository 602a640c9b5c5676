package mapper

import (
	"shop/internal/dto"
	"shop/internal/models"
)

func BannerToDTO(b *models.Banner) dto.BannerDTO {
	return dto.BannerDTO{
		Audit:        auditOf(b.Base),
		Title:        b.Title,
		Description:  b.Description,
		ImageUrl:     b.ImageUrl,
		Link:         b.Link,
		DisplayOrder: b.DisplayOrder,
	}
}

func BannerFromDTO(d *dto.BannerDTO) *models.Banner {
	return &models.Banner{
		Base:         baseOf(d.Audit),
		Title:        d.Title,
		Description:  d.Description,
		ImageUrl:     d.ImageUrl,
		Link:         d.Link,
		DisplayOrder: d.DisplayOrder,
	}
}

func BlogToDTO(b *models.Blog) dto.BlogDTO {
	return dto.BlogDTO{
		Audit:       auditOf(b.Base),
		Title:       b.Title,
		ShortDes:    b.ShortDes,
		ContentHTML: b.ContentHTML,
		ImageUrl:    b.ImageUrl,
		RatingScore: b.RatingScore,
	}
}

func BlogFromDTO(d *dto.BlogDTO) *models.Blog {
	return &models.Blog{
		Base:        baseOf(d.Audit),
		Title:       d.Title,
		ShortDes:    d.ShortDes,
		ContentHTML: d.ContentHTML,
		ImageUrl:    d.ImageUrl,
		RatingScore: d.RatingScore,
	}
}

func CouponToDTO(c *models.Coupon) dto.CouponDTO {
	return dto.CouponDTO{
		Audit:      auditOf(c.Base),
		Code:       c.Code,
		Name:       c.Name,
		HasPercent: c.HasPercent,
		Value:      c.Value,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
	}
}

func CouponFromDTO(d *dto.CouponDTO) *models.Coupon {
	return &models.Coupon{
		Base:       baseOf(d.Audit),
		Code:       d.Code,
		Name:       d.Name,
		HasPercent: d.HasPercent,
		Value:      d.Value,
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
	}
}

func CommentToDTO(c *models.Comment) dto.CommentDTO {
	return dto.CommentDTO{
		Audit:      auditOf(c.Base),
		EntityID:   c.EntityID,
		EntityType: c.EntityType,
		CustomerID: c.CustomerID,
		FullName:   c.FullName,
		Content:    c.Content,
		Rating:     c.Rating,
	}
}

func CommentFromDTO(d *dto.CommentDTO) *models.Comment {
	return &models.Comment{
		Base:       baseOf(d.Audit),
		EntityID:   d.EntityID,
		EntityType: d.EntityType,
		CustomerID: d.CustomerID,
		FullName:   d.FullName,
		Content:    d.Content,
		Rating:     d.Rating,
	}
}

func ContactToDTO(c *models.Contact) dto.ContactDTO {
	return dto.ContactDTO{
		Audit:       auditOf(c.Base),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Message:     c.Message,
		Status:      c.Status,
	}
}

func ContactFromDTO(d *dto.ContactDTO) *models.Contact {
	return &models.Contact{
		Base:        baseOf(d.Audit),
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Message:     d.Message,
		Status:      d.Status,
	}
}

func CustomerToDTO(c *models.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		Audit:     auditOf(c.Base),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		UserID:    c.UserID,
	}
}

func CustomerFromDTO(d *dto.CustomerDTO) *models.Customer {
	return &models.Customer{
		Base:      baseOf(d.Audit),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		UserID:    d.UserID,
	}
}

func PageContentToDTO(p *models.PageContent) dto.PageContentDTO {
	return dto.PageContentDTO{
		Audit:       auditOf(p.Base),
		Title:       p.Title,
		ShortDes:    p.ShortDes,
		Description: p.Description,
		ImageUrl:    p.ImageUrl,
		Order:       p.SortOrder,
	}
}

func PageContentFromDTO(d *dto.PageContentDTO) *models.PageContent {
	return &models.PageContent{
		Base:        baseOf(d.Audit),
		Title:       d.Title,
		ShortDes:    d.ShortDes,
		Description: d.Description,
		ImageUrl:    d.ImageUrl,
		SortOrder:   d.Order,
	}
}

func SocialMediaToDTO(s *models.SocialMedia) dto.SocialMediaDTO {
	return dto.SocialMediaDTO{
		Audit:        auditOf(s.Base),
		Title:        s.Title,
		Link:         s.Link,
		IconUrl:      s.IconUrl,
		DisplayOrder: s.DisplayOrder,
	}
}

func SocialMediaFromDTO(d *dto.SocialMediaDTO) *models.SocialMedia {
	return &models.SocialMedia{
		Base:         baseOf(d.Audit),
		Title:        d.Title,
		Link:         d.Link,
		IconUrl:      d.IconUrl,
		DisplayOrder: d.DisplayOrder,
	}
}

func InformationWebsiteToDTO(w *models.InformationWebsite) dto.InformationWebsiteDTO {
	return dto.InformationWebsiteDTO{
		Audit:       auditOf(w.Base),
		Title:       w.Title,
		Description: w.Description,
		Logo:        w.Logo,
		Address:     w.Address,
		Phone:       w.Phone,
		Email:       w.Email,
		Fax:         w.Fax,
	}
}

func InformationWebsiteFromDTO(d *dto.InformationWebsiteDTO) *models.InformationWebsite {
	return &models.InformationWebsite{
		Base:        baseOf(d.Audit),
		Title:       d.Title,
		Description: d.Description,
		Logo:        d.Logo,
		Address:     d.Address,
		Phone:       d.Phone,
		Email:       d.Email,
		Fax:         d.Fax,
	}
}

func FileToDTO(f *models.File) dto.FileDTO {
	return dto.FileDTO{
		Audit:      auditOf(f.Base),
		Name:       f.Name,
		Url:        f.Url,
		FileExt:    f.FileExt,
		EntityID:   f.EntityID,
		EntityType: f.EntityType,
		TypeUpload: f.TypeUpload,
	}
}

func FileFromDTO(d *dto.FileDTO) *models.File {
	return &models.File{
		Base:       baseOf(d.Audit),
		Name:       d.Name,
		Url:        d.Url,
		FileExt:    d.FileExt,
		EntityID:   d.EntityID,
		EntityType: d.EntityType,
		TypeUpload: d.TypeUpload,
	}
}

func CustomerWishListToDTO(w *models.CustomerWishList) dto.CustomerWishListDTO {
	return dto.CustomerWishListDTO{
		Audit:      auditOf(w.Base),
		CustomerID: w.CustomerID,
		ProductID:  w.ProductID,
	}
}

func CustomerWishListFromDTO(d *dto.CustomerWishListDTO) *models.CustomerWishList {
	return &models.CustomerWishList{
		Base:       baseOf(d.Audit),
		CustomerID: d.CustomerID,
		ProductID:  d.ProductID,
	}
}
