package repositories

import (
	"context"

	"storeapi/commands"
	"storeapi/dto"
	apperrors "storeapi/errors"
	"storeapi/models"
	"storeapi/pagination"
	"storeapi/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductFilter returns the text/price OR clause and the ANDed price range.
func ProductFilter(p dto.ProductSearchParams) []query.Scope {
	var exactPrice *query.Clause
	if p.Price != nil {
		exactPrice = query.Equal("products.price", *p.Price, true)
	}

	return []query.Scope{
		query.Where(query.Or(
			query.Contains("products.title", p.Title),
			query.Contains("products.description", p.Description),
			query.Contains("products.slug", p.Slug),
			exactPrice,
		)),
		query.WhereIf(p.PriceStart.IsPositive(), "products.price >= ?", p.PriceStart),
		query.WhereIf(p.PriceEnd.IsPositive(), "products.price <= ?", p.PriceEnd),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return commands.NewCreateCommand(r.db, product).Execute(ctx)
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	return commands.NewUpdateCommand(r.db, product).Execute(ctx)
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := commands.NewDeleteCommand[models.Product](r.db, id).Execute(ctx)
	return translate(err, apperrors.ErrProductNotFound)
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, translate(err, apperrors.ErrProductNotFound)
	}
	return &product, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAll returns every product ordered by title.
func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("products.title, products.id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProductRepository) List(ctx context.Context, params dto.ListParams) (pagination.PagedResult[models.Product], error) {
	base := scoped(ctx, r.db, &models.Product{})
	return findPage[models.Product](base, "products.title, products.id", params.PageParams)
}

func (r *ProductRepository) Search(ctx context.Context, params dto.ProductSearchParams) (pagination.PagedResult[models.Product], error) {
	base := scoped(ctx, r.db, &models.Product{}, ProductFilter(params)...)
	return findPage[models.Product](base, "products.title, products.id", params.PageParams)
}
