package domain

type ItemSales struct {
	Name    string  `json:"name"`
	Sold    int     `json:"sold"`
	Revenue float64 `json:"revenue"`
}

type TrendPoint struct {
	Date    string  `json:"date"` // UTC calendar day, YYYY-MM-DD
	Revenue float64 `json:"revenue"`
}

type BranchRevenue struct {
	Branch  string  `json:"branch"`
	Revenue float64 `json:"revenue"`
}

type HourCount struct {
	Hour  string `json:"hour"` // "HH:00"
	Count int    `json:"count"`
}

type AnalyticsData struct {
	TotalRevenue    float64         `json:"total_revenue"`
	TotalOrders     int             `json:"total_orders"`
	TopItems        []ItemSales     `json:"top_items"`
	RevenueTrend    []TrendPoint    `json:"revenue_trend"`
	RevenueByBranch []BranchRevenue `json:"revenue_by_branch"`
	RepeatCustomers int             `json:"repeat_customers"`
	BusiestHours    []HourCount     `json:"busiest_hours"`
}
