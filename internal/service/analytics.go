package service

import (
	"fmt"
	"sort"
	"time"

	"tastybites/internal/domain"
)

type AnalyticsService struct {
	repo OrderRepository
}

func NewAnalyticsService(repo OrderRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Compute recomputes every metric from the full order history. There is no
// incremental path; each call is a fresh fold over the fetched set.
func (s *AnalyticsService) Compute() (domain.AnalyticsData, error) {
	orders, err := s.repo.ListOrders()
	if err != nil {
		return domain.AnalyticsData{}, err
	}
	return Aggregate(orders, time.Now()), nil
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)

// Aggregate derives all dashboard metrics from an order set. An empty set
// yields zeroed totals and empty lists.
func Aggregate(orders []domain.Order, now time.Time) domain.AnalyticsData {
	data := domain.AnalyticsData{
		TopItems:        []domain.ItemSales{},
		RevenueTrend:    []domain.TrendPoint{},
		RevenueByBranch: []domain.BranchRevenue{},
		BusiestHours:    []domain.HourCount{},
	}
	if len(orders) == 0 {
		return data
	}

	for _, o := range orders {
		data.TotalRevenue += o.Total
	}
	data.TotalOrders = len(orders)

	data.TopItems = topItems(orders)
	data.RevenueTrend = revenueTrend(orders, now)
	data.RevenueByBranch = revenueByBranch(orders)
	data.RepeatCustomers = repeatCustomers(orders)
	data.BusiestHours = busiestHours(orders)

	return data
}

// topItems groups line items by menu item id and keeps the five best
// sellers by units sold. Ties keep first-seen order.
func topItems(orders []domain.Order) []domain.ItemSales {
	index := map[int]int{}
	items := []domain.ItemSales{}
	for _, o := range orders {
		for _, item := range o.Items {
			i, seen := index[item.ItemID]
			if !seen {
				index[item.ItemID] = len(items)
				items = append(items, domain.ItemSales{Name: item.Name})
				i = len(items) - 1
			}
			items[i].Sold += item.Quantity
			items[i].Revenue += item.Price * float64(item.Quantity)
		}
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Sold > items[j].Sold })
	if len(items) > 5 {
		items = items[:5]
	}
	return items
}

// revenueTrend produces one point per UTC calendar day for the 7 days
// ending at now, oldest first, zero-filled.
func revenueTrend(orders []domain.Order, now time.Time) []domain.TrendPoint {
	trend := make([]domain.TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.UTC().AddDate(0, 0, -i).Format("2006-01-02")
		var revenue float64
		for _, o := range orders {
			if o.CreatedAt.UTC().Format("2006-01-02") == day {
				revenue += o.Total
			}
		}
		trend = append(trend, domain.TrendPoint{Date: day, Revenue: revenue})
	}
	return trend
}

func revenueByBranch(orders []domain.Order) []domain.BranchRevenue {
	index := map[string]int{}
	branches := []domain.BranchRevenue{}
	for _, o := range orders {
		branch := o.Location
		if branch == "" {
			branch = "Unknown"
		}
		i, seen := index[branch]
		if !seen {
			index[branch] = len(branches)
			branches = append(branches, domain.BranchRevenue{Branch: branch})
			i = len(branches) - 1
		}
		branches[i].Revenue += o.Total
	}
	return branches
}

// repeatCustomers counts customer keys appearing in more than one order.
// The key is the phone number, falling back to the name; orders with
// neither are dropped.
func repeatCustomers(orders []domain.Order) int {
	counts := map[string]int{}
	for _, o := range orders {
		key := o.Phone
		if key == "" {
			key = o.Customer
		}
		if key == "" {
			continue
		}
		counts[key]++
	}

	repeats := 0
	for _, c := range counts {
		if c > 1 {
			repeats++
		}
	}
	return repeats
}

// busiestHours counts orders per hour-of-day of the creation timestamp and
// keeps the top five.
func busiestHours(orders []domain.Order) []domain.HourCount {
	index := map[string]int{}
	hours := []domain.HourCount{}
	for _, o := range orders {
		label := fmt.Sprintf("%02d:00", o.CreatedAt.Hour())
		i, seen := index[label]
		if !seen {
			index[label] = len(hours)
			hours = append(hours, domain.HourCount{Hour: label})
			i = len(hours) - 1
		}
		hours[i].Count++
	}

	sort.SliceStable(hours, func(i, j int) bool { return hours[i].Count > hours[j].Count })
	if len(hours) > 5 {
		hours = hours[:5]
	}
	return hours
}
