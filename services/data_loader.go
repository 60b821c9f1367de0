package services

import (
	"context"
	"fmt"

	"github.com/BadarHossain1/maplenest-admin-api/analytics"
	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// LoadDataset fetches orders (optionally bounded by the window), users and
// products concurrently. The first failure cancels the other loads and the
// whole dataset is discarded.
func LoadDataset(ctx context.Context, w analytics.Window) (analytics.Dataset, error) {
	var ds analytics.Dataset
	g, gctx := errgroup.WithContext(ctx)
	db := config.DB

	g.Go(func() error {
		q := db.WithContext(gctx).Model(&models.Order{})
		q = scopeWindow(q, w)
		var orders []models.Order
		if err := q.Order("order_date ASC").Find(&orders).Error; err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		ds.Orders = orders
		return nil
	})
	g.Go(func() error {
		var users []models.User
		if err := db.WithContext(gctx).Find(&users).Error; err != nil {
			return fmt.Errorf("load users: %w", err)
		}
		ds.Users = users
		return nil
	})
	g.Go(func() error {
		var products []models.Product
		if err := db.WithContext(gctx).Find(&products).Error; err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		ds.Products = products
		return nil
	})

	if err := g.Wait(); err != nil {
		return analytics.Dataset{}, err
	}
	return ds, nil
}

func scopeWindow(q *gorm.DB, w analytics.Window) *gorm.DB {
	if !w.From.IsZero() {
		q = q.Where("order_date >= ?", w.From)
	}
	if !w.To.IsZero() {
		q = q.Where("order_date < ?", w.To.AddDate(0, 0, 1))
	}
	return q
}
