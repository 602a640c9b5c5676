package services

import (
	"shop/internal/cache"
	"shop/internal/dto"
	"shop/internal/mapper"
	"shop/internal/models"
	"shop/internal/repositories"
)

// Factory builds services over a fresh session of the store. Every call
// returns a service with its own unit of work, so handlers call it once per
// request.
type Factory struct {
	store     repositories.Store
	cache     cache.CategoryCache
	publisher EventPublisher
	jwtSecret string
}

// NewFactory creates a new Factory. categoryCache and publisher may be nil.
func NewFactory(store repositories.Store, categoryCache cache.CategoryCache, publisher EventPublisher, jwtSecret string) *Factory {
	return &Factory{
		store:     store,
		cache:     categoryCache,
		publisher: publisher,
		jwtSecret: jwtSecret,
	}
}

func (f *Factory) Products() *ProductService {
	session := f.store.NewSession()
	return newProductService(session)
}

func newProductService(session repositories.Session) *ProductService {
	return NewProductService(
		repositories.For[models.Product](session),
		repositories.For[models.Category](session),
		session,
	)
}

func (f *Factory) Categories() *CategoryService {
	session := f.store.NewSession()
	return NewCategoryService(
		repositories.For[models.Category](session),
		repositories.For[models.Product](session),
		session,
		f.cache,
	)
}

func (f *Factory) Orders() *OrderService {
	session := f.store.NewSession()
	return NewOrderService(OrderRepositories{
		Orders:   repositories.For[models.Order](session),
		Details:  repositories.For[models.OrderDetail](session),
		Products: repositories.For[models.Product](session),
		Coupons:  repositories.For[models.Coupon](session),
	}, session, newProductService(session), f.publisher)
}

func (f *Factory) Auth() *AuthService {
	session := f.store.NewSession()
	return NewAuthService(repositories.For[models.User](session), session, f.jwtSecret)
}

func crud[E, D any](f *Factory, name string, toDTO func(*E) D, fromDTO func(*D) *E) *CrudService[E, D] {
	session := f.store.NewSession()
	return NewCrudService(name, repositories.For[E](session), session, CrudMapper[E, D]{ToDTO: toDTO, FromDTO: fromDTO})
}

func (f *Factory) Banners() *CrudService[models.Banner, dto.BannerDTO] {
	return crud(f, "banner", mapper.BannerToDTO, mapper.BannerFromDTO)
}

func (f *Factory) Blogs() *CrudService[models.Blog, dto.BlogDTO] {
	return crud(f, "blog", mapper.BlogToDTO, mapper.BlogFromDTO)
}

func (f *Factory) Coupons() *CrudService[models.Coupon, dto.CouponDTO] {
	return crud(f, "coupon", mapper.CouponToDTO, mapper.CouponFromDTO)
}

func (f *Factory) Comments() *CrudService[models.Comment, dto.CommentDTO] {
	return crud(f, "comment", mapper.CommentToDTO, mapper.CommentFromDTO)
}

func (f *Factory) Contacts() *CrudService[models.Contact, dto.ContactDTO] {
	return crud(f, "contact", mapper.ContactToDTO, mapper.ContactFromDTO)
}

func (f *Factory) Customers() *CrudService[models.Customer, dto.CustomerDTO] {
	return crud(f, "customer", mapper.CustomerToDTO, mapper.CustomerFromDTO)
}

func (f *Factory) PageContents() *CrudService[models.PageContent, dto.PageContentDTO] {
	return crud(f, "page content", mapper.PageContentToDTO, mapper.PageContentFromDTO)
}

func (f *Factory) SocialMedias() *CrudService[models.SocialMedia, dto.SocialMediaDTO] {
	return crud(f, "social media", mapper.SocialMediaToDTO, mapper.SocialMediaFromDTO)
}

func (f *Factory) InformationWebsites() *CrudService[models.InformationWebsite, dto.InformationWebsiteDTO] {
	return crud(f, "information website", mapper.InformationWebsiteToDTO, mapper.InformationWebsiteFromDTO)
}

func (f *Factory) Files() *CrudService[models.File, dto.FileDTO] {
	return crud(f, "file", mapper.FileToDTO, mapper.FileFromDTO)
}

func (f *Factory) WishLists() *CrudService[models.CustomerWishList, dto.CustomerWishListDTO] {
	return crud(f, "wish list item", mapper.CustomerWishListToDTO, mapper.CustomerWishListFromDTO)
}
