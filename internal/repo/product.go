package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storeapi/internal/models"
)

type ProductRepo struct {
	DB *gorm.DB
}

// QuantityUpdate sets a product's stock to an absolute value.
type QuantityUpdate struct {
	ID       uuid.UUID
	Quantity int
}

func (r *ProductRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) FindByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) FindAllByID(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAllByIDForUpdate takes row locks so concurrent order creations cannot
// decrement the same stock twice. SQLite serializes writers on its own, so the
// locking clause is only added on postgres.
func (r *ProductRepo) FindAllByIDForUpdate(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Where("id IN ?", ids)
	if r.DB.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) ListProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Order("name ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

func (r *ProductRepo) Create(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *ProductRepo) UpdateQuantity(ctx context.Context, updates []QuantityUpdate) ([]models.Product, error) {
	ids := make([]uuid.UUID, 0, len(updates))
	for _, u := range updates {
		res := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", u.ID).Update("quantity", u.Quantity)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
		ids = append(ids, u.ID)
	}
	return r.FindAllByID(ctx, ids)
}
