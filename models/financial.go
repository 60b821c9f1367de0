package models

type FinancialSummary struct {
	Orders            int     `json:"orders"`
	GrossSales        float64 `json:"grossSales"` // sum of subtotals
	Shipping          float64 `json:"shipping"`
	Tax               float64 `json:"tax"`
	TotalCollected    float64 `json:"totalCollected"`
	COGS              float64 `json:"cogs"`
	GrossProfit       float64 `json:"grossProfit"`
	GrossMargin       float64 `json:"grossMargin"`
	NetRevenue        float64 `json:"netRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	RefundedAmount    float64 `json:"refundedAmount"`
	RefundedOrders    int     `json:"refundedOrders"`
	CancelledOrders   int     `json:"cancelledOrders"`
}

type MonthlyPnL struct {
	Month       string  `json:"month"`
	Label       string  `json:"label"`
	Orders      int     `json:"orders"`
	Revenue     float64 `json:"revenue"`
	COGS        float64 `json:"cogs"`
	GrossProfit float64 `json:"grossProfit"`
	Margin      float64 `json:"margin"`
}

type CategoryProfit struct {
	Category string  `json:"category"`
	Units    int     `json:"units"`
	Revenue  float64 `json:"revenue"`
	COGS     float64 `json:"cogs"`
	Profit   float64 `json:"profit"`
	Margin   float64 `json:"margin"`
}

type ProductProfit struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Category    string  `json:"category"`
	Units       int     `json:"units"`
	Revenue     float64 `json:"revenue"`
	COGS        float64 `json:"cogs"`
	Profit      float64 `json:"profit"`
	Margin      float64 `json:"margin"`
}

type InventoryLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Stock       int     `json:"stock"`
	UnitCost    float64 `json:"unitCost"`
	UnitPrice   float64 `json:"unitPrice"`
	CostValue   float64 `json:"costValue"`
	RetailValue float64 `json:"retailValue"`
}

type InventoryValuation struct {
	Items       []InventoryLine `json:"items"`
	TotalUnits  int             `json:"totalUnits"`
	TotalCost   float64         `json:"totalCost"`
	TotalRetail float64         `json:"totalRetail"`
}
