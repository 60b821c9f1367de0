package main

import (
	"fmt"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"gorm.io/gorm"
)

type demoProduct struct {
	name     string
	category int
	price    models.ProductPrice
	sizes    []models.ProductSize
	color    models.ProductColor
	featured bool
}

var demoCategories = []string{"Outerwear", "Knitwear", "Accessories"}

var demoProducts = []demoProduct{
	{"Maple Parka", 0, models.ProductPrice{Original: 349, Current: 299, Cost: 140},
		[]models.ProductSize{{Size: "S", Stock: 4}, {Size: "M", Stock: 6}, {Size: "L", Stock: 3}},
		models.ProductColor{Name: "Forest Green", Hex: "#228B22"}, true},
	{"Harbour Rain Shell", 0, models.ProductPrice{Original: 189, Current: 189, Cost: 70},
		[]models.ProductSize{{Size: "M", Stock: 12}, {Size: "L", Stock: 8}},
		models.ProductColor{Name: "Navy", Hex: "#1F2A44"}, false},
	{"Merino Crew Sweater", 1, models.ProductPrice{Original: 129, Current: 99, Cost: 38},
		[]models.ProductSize{{Size: "S", Stock: 10}, {Size: "M", Stock: 15}},
		models.ProductColor{Name: "Oatmeal", Hex: "#D8CBB5"}, true},
	{"Cable Knit Toque", 2, models.ProductPrice{Original: 39, Current: 39, Cost: 9},
		[]models.ProductSize{{Size: "OS", Stock: 40}},
		models.ProductColor{Name: "Red", Hex: "#B22222"}, false},
}

var demoCustomers = []models.User{
	{FullName: "Avery Tremblay", Email: "avery@example.ca", Location: "Montreal, QC", Segment: models.SegmentVIP, IsActive: true, IsEmailVerified: true},
	{FullName: "Jordan Singh", Email: "jordan@example.ca", Location: "Toronto, ON", Segment: models.SegmentLoyal, IsActive: true, IsEmailVerified: true},
	{FullName: "Casey MacLeod", Email: "casey@example.ca", Location: "Halifax, NS", Segment: models.SegmentNewBuyer, IsActive: true},
	{FullName: "Riley Chen", Email: "riley@example.ca", Location: "Vancouver, BC", Segment: models.SegmentSeasonalShopper, IsActive: true},
}

// seedDemo inserts a small, internally consistent store: categories,
// products, customers, a year of orders, a discount and a campaign.
func seedDemo(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		cats := make([]models.Category, len(demoCategories))
		for i, name := range demoCategories {
			cats[i] = models.Category{Name: name, Slug: utils.Slugify(name), IsActive: true, SortOrder: i}
			if err := tx.Create(&cats[i]).Error; err != nil {
				return err
			}
		}

		products := make([]models.Product, len(demoProducts))
		for i, dp := range demoProducts {
			cat := cats[dp.category]
			products[i] = models.Product{
				Name:         dp.name,
				CategoryID:   &cat.ID,
				CategoryName: cat.Name,
				Price:        dp.price,
				Sizes:        dp.sizes,
				Colors:       []models.ProductColor{dp.color},
				IsFeatured:   dp.featured,
				IsNewArrival: i%2 == 0,
			}
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}

		customers := append([]models.User(nil), demoCustomers...)
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		statuses := []string{
			models.OrderStatusDelivered, models.OrderStatusDelivered, models.OrderStatusShipped,
			models.OrderStatusProcessing, models.OrderStatusPending, models.OrderStatusCancelled,
		}
		for m := 0; m < 12; m++ {
			for j, cust := range customers {
				if (m+j)%3 == 0 {
					continue
				}
				p := products[(m+j)%len(products)]
				items := []models.OrderItem{{
					ProductID:    p.ID.String(),
					ProductName:  p.Name,
					Price:        p.Price.Current,
					Quantity:     1 + (m+j)%2,
					SelectedSize: p.Sizes[0].Size,
					ColorName:    p.Colors[0].Name,
				}}
				date := time.Date(now.Year(), now.Month(), 5+j*3, 14, 0, 0, 0, time.UTC).AddDate(0, -m, 0)
				number, err := services.NewOrderNumber(date)
				if err != nil {
					return err
				}
				status := statuses[(m+j)%len(statuses)]
				order := models.Order{
					OrderID:      number,
					UserEmail:    cust.Email,
					Items:        items,
					OrderSummary: services.RecomputeSummary(items, models.OrderSummary{Shipping: 12, Tax: 0}),
					Status:       status,
					Channel:      "online",
					OrderDate:    date,
				}
				if status == models.OrderStatusCancelled {
					order.StatusNote = "Customer changed their mind"
				}
				if err := tx.Create(&order).Error; err != nil {
					return fmt.Errorf("order %s: %w", number, err)
				}
			}
		}

		discount := models.Discount{
			Code: "WELCOME10", Description: "10% off a first order", Type: models.DiscountTypePercentage,
			Value: 10, MaxDiscountAmount: 50, UsageLimit: 500,
			ValidFrom: now.AddDate(0, -1, 0), ValidUntil: now.AddDate(0, 6, 0), IsActive: true,
		}
		if err := tx.Create(&discount).Error; err != nil {
			return err
		}

		campaign := models.Campaign{
			Name: "First Frost", Type: "email", TargetAudience: models.SegmentVIP, Budget: 500,
			StartDate: now, EndDate: now.AddDate(0, 0, 21),
			Message:  models.CampaignMessage{Subject: "Winter is coming", Body: "Early access to the new parkas."},
			Discount: models.CampaignDiscount{Code: discount.Code, Percentage: 10},
			Status:   models.CampaignStatusScheduled,
		}
		return tx.Create(&campaign).Error
	})
}
