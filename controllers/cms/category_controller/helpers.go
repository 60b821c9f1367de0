package category_controller

import (
	"context"
	"fmt"

	category_cache "github.com/BadarHossain1/maplenest-admin-api/cache"
	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/google/uuid"
)

type categoryCount struct {
	CategoryID uuid.UUID
	Count      int
}

// productCounts returns the number of products per category id.
func productCounts(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]int, error) {
	q := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Select("category_id, COUNT(*) AS count").
		Where("category_id IS NOT NULL")
	if len(ids) > 0 {
		q = q.Where("category_id IN ?", ids)
	}

	var rows []categoryCount
	if err := q.Group("category_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}
	return counts, nil
}

func itemCount(n int) string {
	return fmt.Sprintf("%d Items", n)
}

func withProducts(cat models.Category, n int) models.CategoryWithProducts {
	cat.ItemCount = itemCount(n)
	return models.CategoryWithProducts{Category: cat, Products: n}
}

// loadAll returns every category in display order with product counts,
// served from the category cache when warm.
func loadAll(ctx context.Context) ([]models.CategoryWithProducts, error) {
	if cached, ok := category_cache.GetList(); ok {
		return cached, nil
	}
	gen := category_cache.Generation()

	var categories []models.Category
	if err := config.DB.WithContext(ctx).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	counts, err := productCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.CategoryWithProducts, 0, len(categories))
	for _, cat := range categories {
		out = append(out, withProducts(cat, counts[cat.ID]))
	}
	category_cache.SetList(gen, out)
	return out, nil
}

func loadOne(ctx context.Context, id uuid.UUID) (models.CategoryWithProducts, error) {
	var cat models.Category
	if err := config.DB.WithContext(ctx).First(&cat, "id = ?", id).Error; err != nil {
		return models.CategoryWithProducts{}, err
	}
	counts, err := productCounts(ctx, id)
	if err != nil {
		return models.CategoryWithProducts{}, err
	}
	return withProducts(cat, counts[id]), nil
}
