package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	invdomain "github.com/cratespace/cratespace/internal/inventory/domain"
	orderdomain "github.com/cratespace/cratespace/internal/order/domain"
)

// Seed populates empty tables with starter data. Existing data is left
// untouched.
func Seed(db *gorm.DB) error {
	if err := seedItems(db); err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}
	if err := seedOrders(db); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}
	return nil
}

func seedItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&invdomain.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	items := []invdomain.Item{
		{Name: "Widget A", Quantity: 100, Price: 19.99, MinimumQuantity: 20, LastRestocked: now},
		{Name: "Widget B", Quantity: 50, Price: 29.99, MinimumQuantity: 10, LastRestocked: now},
		{Name: "Gadget X", Quantity: 75, Price: 49.99, MinimumQuantity: 15, LastRestocked: now},
	}
	return db.Create(&items).Error
}

func seedOrders(db *gorm.DB) error {
	var count int64
	if err := db.Model(&orderdomain.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	orders := []orderdomain.Order{
		{ItemName: "Widget A", Quantity: 5, TotalPrice: 99.95, Status: orderdomain.StatusDelivered, OrderDate: now.Add(-48 * time.Hour)},
		{ItemName: "Gadget X", Quantity: 3, TotalPrice: 149.97, Status: orderdomain.StatusPending, OrderDate: now.Add(-3 * time.Hour)},
	}
	return db.Create(&orders).Error
}
