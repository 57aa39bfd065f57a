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

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerFilter ORs the populated text fields; nil when none is set.
func CustomerFilter(p dto.CustomerSearchParams) *query.Clause {
	return query.Or(
		query.Contains("customers.name", p.Name),
		query.Contains("customers.email", p.Email),
		query.Contains("customers.phone", p.Phone),
	)
}

func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return commands.NewCreateCommand(r.db, customer).Execute(ctx)
}

func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return commands.NewUpdateCommand(r.db, customer).Execute(ctx)
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := commands.NewDeleteCommand[models.Customer](r.db, id).Execute(ctx)
	return translate(err, apperrors.ErrCustomerNotFound)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, translate(err, apperrors.ErrCustomerNotFound)
	}
	return &customer, nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepository) List(ctx context.Context, params dto.ListParams) (pagination.PagedResult[models.Customer], error) {
	base := scoped(ctx, r.db, &models.Customer{})
	return findPage[models.Customer](base, "customers.name, customers.id", params.PageParams)
}

func (r *CustomerRepository) Search(ctx context.Context, params dto.CustomerSearchParams) (pagination.PagedResult[models.Customer], error) {
	base := scoped(ctx, r.db, &models.Customer{}, query.Where(CustomerFilter(params)))
	return findPage[models.Customer](base, "customers.name, customers.id", params.PageParams)
}
