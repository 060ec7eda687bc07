package types

// PurchaseInsights summarises a user's order history. IsDemo marks the fixed
// cold-start payload served to users with too little history.
type PurchaseInsights struct {
	TotalOrders            int              `json:"total_orders"`
	TotalSpent             float64          `json:"total_spent"`
	TopCategory            string           `json:"top_category"`
	TopHealthGoals         []string         `json:"top_health_goals"`
	SpendingTrend          []MonthlySpend   `json:"spending_trend"`
	ReorderSuggestions     []ProductSummary `json:"reorder_suggestions"`
	NextPurchasePrediction string           `json:"next_purchase_prediction"`
	Insights               []string         `json:"insights"`
	IsDemo                 bool             `json:"is_demo"`
}

type MonthlySpend struct {
	Month      string  `json:"month"`
	Amount     float64 `json:"amount"`
	OrderCount int     `json:"order_count"`
}
