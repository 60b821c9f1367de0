package models

// AnalyticsOverview represents the main analytics dashboard overview
type AnalyticsOverview struct {
	TotalRevenue      float64              `json:"totalRevenue"`
	TotalOrders       int                  `json:"totalOrders"`
	AverageOrderValue float64              `json:"averageOrderValue"`
	TotalCustomers    int                  `json:"totalCustomers"` // distinct buyers in the window
	TotalProducts     int                  `json:"totalProducts"`
	UnitsSold         int                  `json:"unitsSold"`
	ByChannel         []ChannelShare       `json:"byChannel"`
	ByStatus          map[string]int       `json:"byStatus"`
	MonthlyRevenue    []MonthlyRevenueData `json:"monthlyRevenue"`
}

type ChannelShare struct {
	Channel      string  `json:"channel"`
	Orders       int     `json:"orders"`
	Revenue      float64 `json:"revenue"`
	RevenueShare float64 `json:"revenueShare"`
}

type MonthlyRevenueData struct {
	Month   string  `json:"month"` // 2006-01
	Label   string  `json:"label"` // Jan 2006
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// TopProduct represents a top performing product with sales and revenue metrics
type TopProduct struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Orders       int     `json:"orders"` // distinct orders containing the product
	Units        int     `json:"units"`
	Revenue      float64 `json:"revenue"`
	RevenueShare float64 `json:"revenueShare"`
}

type SeasonalBucket struct {
	Season            string   `json:"season"`
	Months            []string `json:"months"`
	Orders            int      `json:"orders"`
	Units             int      `json:"units"`
	Revenue           float64  `json:"revenue"`
	AverageOrderValue float64  `json:"averageOrderValue"`
	RevenueShare      float64  `json:"revenueShare"`
	TopProduct        string   `json:"topProduct"`
}

// CohortRow is one first-purchase month and its retention by month offset.
type CohortRow struct {
	Cohort    string    `json:"cohort"` // 2006-01
	Size      int       `json:"size"`
	Retention []float64 `json:"retention"` // percent, index = months since first purchase
}

type SegmentCLV struct {
	Segment           string  `json:"segment"`
	Customers         int     `json:"customers"`
	Orders            int     `json:"orders"`
	Revenue           float64 `json:"revenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	PurchaseFrequency float64 `json:"purchaseFrequency"`
	CLV               float64 `json:"clv"`
	RevenueShare      float64 `json:"revenueShare"`
}

type ForecastPoint struct {
	Month    string   `json:"month"`
	Revenue  float64  `json:"revenue"`
	Smoothed *float64 `json:"smoothed,omitempty"`
}

type RevenueForecast struct {
	Alpha    float64         `json:"alpha"`
	Level    float64         `json:"level"`
	History  []ForecastPoint `json:"history"`
	Forecast []ForecastPoint `json:"forecast"`
}
