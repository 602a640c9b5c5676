package services

import (
	"context"
	"time"

	"shop/internal/actor"
	"shop/internal/cache"
	"shop/internal/constants"
	"shop/internal/dto"
	ierr "shop/internal/errors"
	"shop/internal/logger"
	"shop/internal/mapper"
	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type (
	CategoryResult     = dto.Result[dto.CategoryDTO]
	CategoryListResult = dto.Result[[]dto.CategoryDTO]
)

// CategoryService handles business logic related to categories. The list of
// live categories is cached and dropped on every write.
type CategoryService struct {
	categories repositories.Repository[models.Category]
	products   repositories.Repository[models.Product]
	uow        repositories.UnitOfWork
	cache      cache.CategoryCache
	validate   *validator.Validate
	now        func() time.Time
}

// NewCategoryService creates a new CategoryService. A nil cache disables caching.
func NewCategoryService(
	categories repositories.Repository[models.Category],
	products repositories.Repository[models.Product],
	uow repositories.UnitOfWork,
	categoryCache cache.CategoryCache,
) *CategoryService {
	if categoryCache == nil {
		categoryCache = cache.NopCategoryCache{}
	}
	return &CategoryService{
		categories: categories,
		products:   products,
		uow:        uow,
		cache:      categoryCache,
		validate:   validation.New(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *CategoryService) Create(ctx context.Context, d *dto.CategoryDTO) (CategoryResult, error) {
	if res, ok := s.checkInput(d); !ok {
		return res, nil
	}

	category := mapper.CategoryFromDTO(d)
	a := actor.FromContext(ctx)
	category.MarkCreated(a.ID, a.Name, s.now())

	s.categories.Add(category)
	if _, err := s.uow.Commit(ctx); err != nil {
		return CategoryResult{}, err
	}
	s.invalidate(ctx)

	out := mapper.CategoryToDTO(category)
	return dto.Success(constants.CreateSuccess, &out), nil
}

func (s *CategoryService) Update(ctx context.Context, d *dto.CategoryDTO) (CategoryResult, error) {
	if res, ok := s.checkInput(d); !ok {
		return res, nil
	}

	existing, err := s.categories.Find(ctx, d.ID)
	if err != nil {
		return CategoryResult{}, err
	}
	if existing == nil || existing.IsDeleted {
		return dto.Failure[dto.CategoryDTO](constants.Error, ierr.NewNotFound("category with ID %s not found", d.ID)), nil
	}

	category := mapper.CategoryFromDTO(d)
	category.KeepCreated(&existing.Base)
	a := actor.FromContext(ctx)
	category.MarkUpdated(a.ID, a.Name, s.now())

	s.categories.Update(category)
	if _, err := s.uow.Commit(ctx); err != nil {
		return CategoryResult{}, err
	}
	s.invalidate(ctx)

	out := mapper.CategoryToDTO(category)
	return dto.Success(constants.UpdateSuccess, &out), nil
}

// Delete soft-deletes a category. A category that still has live products
// cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) (CategoryResult, error) {
	category, err := s.categories.Find(ctx, id)
	if err != nil {
		return CategoryResult{}, err
	}
	if category == nil || category.IsDeleted {
		return dto.Failure[dto.CategoryDTO](constants.Error, ierr.NewNotFound("category with ID %s not found", id)), nil
	}

	inUse, err := s.products.Query().
		Where(repositories.Eq("category_id", id, func(p *models.Product) uuid.UUID { return p.CategoryID })).
		Where(repositories.NotDeleted[models.Product]()).
		Count(ctx)
	if err != nil {
		return CategoryResult{}, err
	}
	if inUse > 0 {
		return dto.Failure[dto.CategoryDTO](constants.InvalidData, ierr.NewValidation("category %s still has %d products", id, inUse)), nil
	}

	a := actor.FromContext(ctx)
	category.MarkDeleted(a.ID, a.Name, s.now())
	s.categories.Remove(category)
	if _, err := s.uow.Commit(ctx); err != nil {
		return CategoryResult{}, err
	}
	s.invalidate(ctx)

	out := mapper.CategoryToDTO(category)
	return dto.Success(constants.DeleteSuccess, &out), nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (CategoryResult, error) {
	category, err := s.categories.Find(ctx, id)
	if err != nil {
		return CategoryResult{}, err
	}
	if category == nil || category.IsDeleted {
		return dto.Failure[dto.CategoryDTO](constants.Error, ierr.NewNotFound("category with ID %s not found", id)), nil
	}
	out := mapper.CategoryToDTO(category)
	return dto.Success(constants.ListSuccess, &out), nil
}

// List returns every live category ordered by name, served from the cache
// when possible.
func (s *CategoryService) List(ctx context.Context) (CategoryListResult, error) {
	cached, ok, err := s.cache.GetAll(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Category cache read failed")
	} else if ok {
		return dto.Success(constants.ListSuccess, &cached), nil
	}

	categories, err := s.categories.Query().
		Where(repositories.NotDeleted[models.Category]()).
		OrderBy(repositories.Sort[models.Category]{
			Column: "name",
			Less:   func(a, b *models.Category) bool { return a.Name < b.Name },
		}).
		All(ctx)
	if err != nil {
		return CategoryListResult{}, err
	}

	out := mapper.ToDTOs(categories, mapper.CategoryToDTO)
	if err := s.cache.SetAll(ctx, out); err != nil {
		logger.Warn().Err(err).Msg("Category cache write failed")
	}
	return dto.Success(constants.ListSuccess, &out), nil
}

func (s *CategoryService) checkInput(d *dto.CategoryDTO) (CategoryResult, bool) {
	if d == nil || validation.Blank(d.Name) {
		return dto.Failure[dto.CategoryDTO](constants.InvalidString, ierr.NewValidation("name is required")), false
	}
	if err := s.validate.Struct(d); err != nil {
		return dto.Failure[dto.CategoryDTO](constants.InvalidData, ierr.NewValidation("%s", validation.Summary(err))), false
	}
	return CategoryResult{}, true
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn().Err(err).Msg("Category cache invalidation failed")
	}
}
