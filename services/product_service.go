package services

import (
	"context"
	"strings"

	"storeapi/dto"
	apperrors "storeapi/errors"
	"storeapi/models"
	"storeapi/pagination"
	"storeapi/services/logger"
	"storeapi/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/google/uuid"
)

// ProductService manages the catalog. When an Index is configured every
// write is mirrored into it; mirror failures are logged and never fail the write.
type ProductService struct {
	store  ProductStore
	index  ProductIndex
	logger logger.Logger
}

type ProductServiceOptions struct {
	Store  ProductStore
	Index  ProductIndex
	Logger logger.Logger
}

func NewProductService(opts ProductServiceOptions) *ProductService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	return &ProductService{store: opts.Store, index: opts.Index, logger: opts.Logger}
}

func (s *ProductService) mirror(ctx context.Context, product models.Product) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(ctx, product); err != nil {
		s.logger.Error("mirroring product %s: %v", product.ID, err)
	}
}

// Reindex pushes the whole catalog into the index and returns how many
// products were sent.
func (s *ProductService) Reindex(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeValidation, "Product index is not configured", apperrors.ErrInvalidInput)
	}
	products, err := s.store.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.index.IndexAll(ctx, products); err != nil {
		return 0, err
	}
	s.logger.Info("reindexed %d products", len(products))
	return len(products), nil
}

func applyProductRequest(p *models.Product, req dto.ProductRequest) {
	p.Title = strings.TrimSpace(req.Title)
	p.Description = strings.TrimSpace(req.Description)
	p.Slug = strings.TrimSpace(req.Slug)
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	p.Price = req.Price
}

// Slugify transliterates s to ASCII and joins its lowercase alphanumeric
// runs with single dashes: "Bàn Phím Cơ" becomes "ban-phim-co".
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(unidecode.Unidecode(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	return b.String()
}

func (s *ProductService) Create(ctx context.Context, req dto.ProductRequest) (dto.ProductResponse, error) {
	var product models.Product
	applyProductRequest(&product, req)
	if err := validator.ValidateProduct(&product); err != nil {
		return dto.ProductResponse{}, err
	}

	if err := s.store.Create(ctx, &product); err != nil {
		return dto.ProductResponse{}, err
	}
	s.logger.Info("product %s created", product.ID)
	s.mirror(ctx, product)
	return dto.ToProductResponse(product), nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req dto.ProductRequest) (dto.ProductResponse, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	applyProductRequest(product, req)
	if err := validator.ValidateProduct(product); err != nil {
		return dto.ProductResponse{}, err
	}

	if err := s.store.Update(ctx, product); err != nil {
		return dto.ProductResponse{}, err
	}
	s.mirror(ctx, *product)
	return dto.ToProductResponse(*product), nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product %s deleted", id)
	if s.index != nil {
		if err := s.index.Remove(ctx, id); err != nil {
			s.logger.Error("removing product %s from index: %v", id, err)
		}
	}
	return nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (dto.ProductResponse, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.ToProductResponse(*product), nil
}

func (s *ProductService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.Exists(ctx, id)
}

func (s *ProductService) List(ctx context.Context, params dto.ListParams) (pagination.PagedResult[dto.ProductResponse], error) {
	page, err := s.store.List(ctx, params)
	if err != nil {
		return pagination.PagedResult[dto.ProductResponse]{}, err
	}
	return pagination.Map(page, dto.ToProductResponse), nil
}

func (s *ProductService) Search(ctx context.Context, params dto.ProductSearchParams) (pagination.PagedResult[dto.ProductResponse], error) {
	page, err := s.store.Search(ctx, params)
	if err != nil {
		return pagination.PagedResult[dto.ProductResponse]{}, err
	}
	return pagination.Map(page, dto.ToProductResponse), nil
}
