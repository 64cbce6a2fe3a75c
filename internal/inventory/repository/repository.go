package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cratespace/cratespace/internal/inventory/domain"
)

type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Item{})
}

func (r *GormItemRepository) Create(ctx context.Context, item *domain.Item) error {
	taken, err := r.nameTaken(ctx, item.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrNameConflict
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormItemRepository) FindByID(ctx context.Context, id uint) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) FindByName(ctx context.Context, name string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("id").Find(&items).Error
	return items, err
}

func (r *GormItemRepository) Update(ctx context.Context, item *domain.Item) error {
	taken, err := r.nameTaken(ctx, item.Name, item.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrNameConflict
	}
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormItemRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *GormItemRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	res := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":       quantity,
			"last_restocked": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ReserveStock decrements stock by quantity iff enough stock exists. The
// check and the decrement are one conditional UPDATE, so concurrent
// reservations against the same item cannot oversell.
func (r *GormItemRepository) ReserveStock(ctx context.Context, name string, quantity int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("name = ? AND quantity >= ?", name, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ReturnStock adds quantity back to an item's stock, used by order
// cancellation and placement compensation
func (r *GormItemRepository) ReturnStock(ctx context.Context, name string, quantity int) error {
	res := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("name = ?", name).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *GormItemRepository) FindLowStock(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.WithContext(ctx).Where("quantity <= minimum_quantity").Order("id").Find(&items).Error
	return items, err
}

func (r *GormItemRepository) TotalValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Item{}).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *GormItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Item{}).Count(&count).Error
	return count, err
}

func (r *GormItemRepository) nameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}
