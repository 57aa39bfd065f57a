package repositories

import (
	"context"
	"errors"

	"storeapi/dto"
	apperrors "storeapi/errors"
	"storeapi/pagination"
	"storeapi/query"

	"gorm.io/gorm"
)

// findPage counts the filtered rows, then loads one ordered page of them.
// base must return a fresh chain on every call.
func findPage[T any](base func() *gorm.DB, orderBy string, page dto.PageParams, preloads ...string) (pagination.PagedResult[T], error) {
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return pagination.PagedResult[T]{}, err
	}

	tx := base()
	for _, p := range preloads {
		tx = tx.Preload(p)
	}

	var items []T
	if err := tx.Order(orderBy).
		Scopes(pagination.Paginate(page.PageNumber, page.PageSize)).
		Find(&items).Error; err != nil {
		return pagination.PagedResult[T]{}, err
	}

	return pagination.New(items, int(total), page.PageNumber, page.PageSize), nil
}

func scoped(ctx context.Context, db *gorm.DB, model any, scopes ...query.Scope) func() *gorm.DB {
	return func() *gorm.DB {
		return db.WithContext(ctx).Model(model).Scopes(scopes...)
	}
}

// translate maps gorm's missing-row error onto the given domain error and a
// foreign key violation onto a CONFLICT AppError. The latter needs
// gorm.Config.TranslateError.
func translate(err error, notFound error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewAppError(apperrors.ErrCodeConflict, "Record is still referenced by orders", apperrors.ErrInUse)
	}
	return err
}
