package services

import (
	"context"
	"time"

	"shop/internal/actor"
	"shop/internal/constants"
	"shop/internal/dto"
	ierr "shop/internal/errors"
	"shop/internal/models"
	"shop/internal/pagination"
	"shop/internal/repositories"
	"shop/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CrudMapper converts between an entity and its DTO.
type CrudMapper[E, D any] struct {
	ToDTO   func(*E) D
	FromDTO func(*D) *E
}

// CrudService provides create, update, delete and lookup for the simple
// content entities (banners, blogs, coupons and so on). Input is checked
// against the DTO's validate tags only.
type CrudService[E, D any] struct {
	name     string
	repo     repositories.Repository[E]
	uow      repositories.UnitOfWork
	mapper   CrudMapper[E, D]
	validate *validator.Validate
	now      func() time.Time
}

// NewCrudService creates a new CrudService. name is used in error messages.
func NewCrudService[E, D any](name string, repo repositories.Repository[E], uow repositories.UnitOfWork, m CrudMapper[E, D]) *CrudService[E, D] {
	return &CrudService[E, D]{
		name:     name,
		repo:     repo,
		uow:      uow,
		mapper:   m,
		validate: validation.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *CrudService[E, D]) Create(ctx context.Context, d *D) (dto.Result[D], error) {
	if res, ok := s.checkInput(d); !ok {
		return res, nil
	}

	entity := s.mapper.FromDTO(d)
	a := actor.FromContext(ctx)
	baseOfEntity(entity).MarkCreated(a.ID, a.Name, s.now())

	s.repo.Add(entity)
	if _, err := s.uow.Commit(ctx); err != nil {
		return dto.Result[D]{}, err
	}

	out := s.mapper.ToDTO(entity)
	return dto.Success(constants.CreateSuccess, &out), nil
}

func (s *CrudService[E, D]) Update(ctx context.Context, d *D) (dto.Result[D], error) {
	if res, ok := s.checkInput(d); !ok {
		return res, nil
	}

	id := any(d).(dto.Identified).GetID()
	existing, err := s.live(ctx, id)
	if err != nil {
		return dto.Result[D]{}, err
	}
	if existing == nil {
		return s.notFound(id), nil
	}

	entity := s.mapper.FromDTO(d)
	base := baseOfEntity(entity)
	base.KeepCreated(baseOfEntity(existing))
	a := actor.FromContext(ctx)
	base.MarkUpdated(a.ID, a.Name, s.now())

	s.repo.Update(entity)
	if _, err := s.uow.Commit(ctx); err != nil {
		return dto.Result[D]{}, err
	}

	out := s.mapper.ToDTO(entity)
	return dto.Success(constants.UpdateSuccess, &out), nil
}

func (s *CrudService[E, D]) Delete(ctx context.Context, id uuid.UUID) (dto.Result[D], error) {
	entity, err := s.live(ctx, id)
	if err != nil {
		return dto.Result[D]{}, err
	}
	if entity == nil {
		return s.notFound(id), nil
	}

	a := actor.FromContext(ctx)
	baseOfEntity(entity).MarkDeleted(a.ID, a.Name, s.now())
	s.repo.Remove(entity)
	if _, err := s.uow.Commit(ctx); err != nil {
		return dto.Result[D]{}, err
	}

	out := s.mapper.ToDTO(entity)
	return dto.Success(constants.DeleteSuccess, &out), nil
}

func (s *CrudService[E, D]) GetByID(ctx context.Context, id uuid.UUID) (dto.Result[D], error) {
	entity, err := s.live(ctx, id)
	if err != nil {
		return dto.Result[D]{}, err
	}
	if entity == nil {
		return s.notFound(id), nil
	}
	out := s.mapper.ToDTO(entity)
	return dto.Success(constants.ListSuccess, &out), nil
}

// List returns a page of live rows, newest first.
func (s *CrudService[E, D]) List(ctx context.Context, pageIndex, pageSize int) (dto.Result[pagination.PaginatedList[D]], error) {
	q := s.repo.Query().
		Where(repositories.NotDeleted[E]()).
		OrderBy(repositories.NewestFirst[E]())

	page, err := pagination.Paginate(ctx, q, pageIndex, pageSize)
	if err != nil {
		return dto.Result[pagination.PaginatedList[D]]{}, err
	}

	out := pagination.Map(page, func(e E) D { return s.mapper.ToDTO(&e) })
	return dto.Success(constants.ListSuccess, &out), nil
}

func (s *CrudService[E, D]) live(ctx context.Context, id uuid.UUID) (*E, error) {
	entity, err := s.repo.Find(ctx, id)
	if err != nil || entity == nil {
		return nil, err
	}
	if baseOfEntity(entity).IsDeleted {
		return nil, nil
	}
	return entity, nil
}

func (s *CrudService[E, D]) notFound(id uuid.UUID) dto.Result[D] {
	return dto.Failure[D](constants.NotFound, ierr.NewNotFound("%s with ID %s not found", s.name, id))
}

func (s *CrudService[E, D]) checkInput(d *D) (dto.Result[D], bool) {
	if d == nil {
		return dto.Failure[D](constants.InvalidData, ierr.NewValidation("%s is required", s.name)), false
	}
	if err := s.validate.Struct(d); err != nil {
		return dto.Failure[D](constants.InvalidData, ierr.NewValidation("%s", validation.Summary(err))), false
	}
	return dto.Result[D]{}, true
}

func baseOfEntity[E any](e *E) *models.Base {
	return any(e).(models.Entity).GetBase()
}
