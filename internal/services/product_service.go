package services

import (
	"context"
	"time"

	"shop/internal/actor"
	"shop/internal/constants"
	"shop/internal/dto"
	ierr "shop/internal/errors"
	"shop/internal/mapper"
	"shop/internal/models"
	"shop/internal/pagination"
	"shop/internal/repositories"
	"shop/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	ProductResult     = dto.Result[dto.ProductDTO]
	ProductListResult = dto.Result[[]dto.ProductDTO]
	ProductPageResult = dto.Result[pagination.PaginatedList[dto.ProductDTO]]
	ProductSearch     = dto.SearchPaginationDTO[dto.ProductSearchDTO]
)

var saleCount = repositories.Counter[models.Product]{
	Column: "sale_count",
	Field:  func(p *models.Product) *int { return &p.SaleCount },
}

// ProductService handles business logic related to products. It is bound to
// a single session; build a new one per request.
type ProductService struct {
	products   repositories.Repository[models.Product]
	categories repositories.Repository[models.Category]
	uow        repositories.UnitOfWork
	validate   *validator.Validate
	now        func() time.Time
}

// NewProductService creates a new ProductService.
func NewProductService(
	products repositories.Repository[models.Product],
	categories repositories.Repository[models.Category],
	uow repositories.UnitOfWork,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		uow:        uow,
		validate:   validation.New(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create validates the product, checks its category and persists it.
func (s *ProductService) Create(ctx context.Context, d *dto.ProductDTO) (ProductResult, error) {
	if res, ok := s.checkInput(d); !ok {
		return res, nil
	}
	if res, ok, err := s.checkCategory(ctx, d.CategoryID); !ok || err != nil {
		return res, err
	}

	product := mapper.ProductFromDTO(d)
	a := actor.FromContext(ctx)
	product.MarkCreated(a.ID, a.Name, s.now())

	s.products.Add(product)
	if _, err := s.uow.Commit(ctx); err != nil {
		return ProductResult{}, err
	}

	out := mapper.ProductToDTO(product)
	return dto.Success(constants.CreateSuccess, &out), nil
}

// Update validates the product, checks its category and overwrites the
// stored row. Created audit fields are kept from the stored row.
func (s *ProductService) Update(ctx context.Context, d *dto.ProductDTO) (ProductResult, error) {
	if res, ok := s.checkInput(d); !ok {
		return res, nil
	}
	if res, ok, err := s.checkCategory(ctx, d.CategoryID); !ok || err != nil {
		return res, err
	}

	existing, err := s.products.Find(ctx, d.ID)
	if err != nil {
		return ProductResult{}, err
	}
	if existing == nil || existing.IsDeleted {
		return dto.Failure[dto.ProductDTO](constants.Error, ierr.NewNotFound("product with ID %s not found", d.ID)), nil
	}

	product := mapper.ProductFromDTO(d)
	product.KeepCreated(&existing.Base)
	a := actor.FromContext(ctx)
	product.MarkUpdated(a.ID, a.Name, s.now())

	s.products.Update(product)
	if _, err := s.uow.Commit(ctx); err != nil {
		return ProductResult{}, err
	}

	out := mapper.ProductToDTO(product)
	return dto.Success(constants.UpdateSuccess, &out), nil
}

// Delete soft-deletes the product identified by d.ID.
func (s *ProductService) Delete(ctx context.Context, d *dto.ProductDTO) (ProductResult, error) {
	if d == nil {
		return dto.Failure[dto.ProductDTO](constants.Error, ierr.NewValidation("product is required")), nil
	}

	product, err := s.products.Find(ctx, d.ID)
	if err != nil {
		return ProductResult{}, err
	}
	if product == nil || product.IsDeleted {
		return dto.Failure[dto.ProductDTO](constants.Error, ierr.NewNotFound("product with ID %s not found", d.ID)), nil
	}

	a := actor.FromContext(ctx)
	product.MarkDeleted(a.ID, a.Name, s.now())
	s.products.Remove(product)
	if _, err := s.uow.Commit(ctx); err != nil {
		return ProductResult{}, err
	}

	out := mapper.ProductToDTO(product)
	return dto.Success(constants.DeleteSuccess, &out), nil
}

// GetByID returns a live product whose category is also live.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (ProductResult, error) {
	product, err := s.products.Query().
		Where(repositories.ByID[models.Product](id)).
		Where(repositories.NotDeleted[models.Product]()).
		First(ctx)
	if err != nil {
		return ProductResult{}, err
	}
	if product == nil {
		return dto.Failure[dto.ProductDTO](constants.Error, ierr.NewNotFound("product with ID %s not found", id)), nil
	}

	category, err := s.categories.Find(ctx, product.CategoryID)
	if err != nil {
		return ProductResult{}, err
	}
	if category == nil || category.IsDeleted {
		return dto.Failure[dto.ProductDTO](constants.Error, ierr.NewNotFound("category of product %s not found", id)), nil
	}

	out := mapper.ProductToDTO(product)
	return dto.Success(constants.ListSuccess, &out), nil
}

// GetByCategory lists the live products of a category. An unknown or empty
// category yields an empty list.
func (s *ProductService) GetByCategory(ctx context.Context, categoryID uuid.UUID) (ProductListResult, error) {
	products, err := s.products.Query().
		Where(repositories.Eq("category_id", categoryID, func(p *models.Product) uuid.UUID { return p.CategoryID })).
		Where(repositories.NotDeleted[models.Product]()).
		All(ctx)
	if err != nil {
		return ProductListResult{}, err
	}

	out := mapper.ToDTOs(products, mapper.ProductToDTO)
	return dto.Success(constants.ListSuccess, &out), nil
}

// SearchPagination returns one page of live products matching the populated
// search fields. A nil request is an error result.
func (s *ProductService) SearchPagination(ctx context.Context, req *ProductSearch) (ProductPageResult, error) {
	if req == nil {
		return dto.Failure[pagination.PaginatedList[dto.ProductDTO]](constants.Error, ierr.NewValidation("search request is required")), nil
	}

	q := s.products.Query().Where(repositories.NotDeleted[models.Product]())
	if req.Search != nil {
		q = applyProductSearch(q, req.Search)
	}

	page, err := pagination.Paginate(ctx, q, req.PageIndex, req.PageSize)
	if err != nil {
		return ProductPageResult{}, err
	}

	out := pagination.Map(page, func(p models.Product) dto.ProductDTO { return mapper.ProductToDTO(&p) })
	return dto.Success(constants.ListSuccess, &out), nil
}

// UpdateCount adds delta to the sale count of d. d is updated in place and
// nothing is persisted; callers stage and commit the product themselves.
func (s *ProductService) UpdateCount(d *dto.ProductDTO, delta int) ProductResult {
	if d == nil {
		return dto.Failure[dto.ProductDTO](constants.Error, ierr.NewValidation("product is required"))
	}

	product := mapper.ProductFromDTO(d)
	product.SaleCount += delta
	d.SaleCount = product.SaleCount

	out := *d
	return dto.Success(constants.UpdateSuccess, &out)
}

// AddSaleCount persists delta on the stored sale count of a live product and
// returns the product as committed. The increment is applied by the store,
// so concurrent calls do not overwrite each other.
func (s *ProductService) AddSaleCount(ctx context.Context, id uuid.UUID, delta int) (ProductResult, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current.HasError {
		return current, err
	}
	counted := s.UpdateCount(current.Data, delta)
	if counted.HasError {
		return counted, nil
	}
	if counted.Data.SaleCount < 0 {
		return dto.Failure[dto.ProductDTO](constants.InvalidData, ierr.NewValidation("sale count cannot drop below zero")), nil
	}

	s.products.Increment(id, saleCount, delta)
	if _, err := s.uow.Commit(ctx); err != nil {
		return ProductResult{}, err
	}
	return s.GetByID(ctx, id)
}

func applyProductSearch(q repositories.Query[models.Product], search *dto.ProductSearchDTO) repositories.Query[models.Product] {
	if search.Name != nil && !validation.Blank(*search.Name) {
		q = q.Where(repositories.Contains("name", *search.Name, func(p *models.Product) string { return p.Name }))
	}
	if search.CategoryID != nil {
		q = q.Where(repositories.Eq("category_id", *search.CategoryID, func(p *models.Product) uuid.UUID { return p.CategoryID }))
	}
	if search.IsFeatured != nil {
		q = q.Where(repositories.Eq("is_featured", *search.IsFeatured, func(p *models.Product) bool { return p.IsFeatured }))
	}
	if search.IsActive != nil {
		q = q.Where(repositories.Eq("is_active", *search.IsActive, func(p *models.Product) bool { return p.IsActive }))
	}
	price := func(p *models.Product) decimal.Decimal { return p.Price }
	if search.MinPrice != nil {
		q = q.Where(repositories.AtLeast("price", *search.MinPrice, price))
	}
	if search.MaxPrice != nil {
		q = q.Where(repositories.AtMost("price", *search.MaxPrice, price))
	}
	return q
}

// checkInput rejects a missing dto, a blank name or description, and tag violations.
func (s *ProductService) checkInput(d *dto.ProductDTO) (ProductResult, bool) {
	if d == nil || validation.Blank(d.Name) || validation.Blank(d.Description) {
		return dto.Failure[dto.ProductDTO](constants.InvalidString, ierr.NewValidation("name and description are required")), false
	}
	if err := s.validate.Struct(d); err != nil {
		return dto.Failure[dto.ProductDTO](constants.InvalidData, ierr.NewValidation("%s", validation.Summary(err))), false
	}
	return ProductResult{}, true
}

// checkCategory reports whether categoryID names a live category. Storage
// failures are returned as err.
func (s *ProductService) checkCategory(ctx context.Context, categoryID uuid.UUID) (ProductResult, bool, error) {
	category, err := s.categories.Find(ctx, categoryID)
	if err != nil {
		return ProductResult{}, false, err
	}
	if category == nil || category.IsDeleted {
		return dto.Failure[dto.ProductDTO](constants.Error, ierr.NewNotFound("category with ID %s not found", categoryID)), false, nil
	}
	return ProductResult{}, true, nil
}
