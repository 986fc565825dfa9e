package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tastybites/internal/domain"
	"tastybites/internal/mocks"
	"tastybites/internal/service"
)

func day(now time.Time, offset int, hour int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestAggregate_EmptyOrders(t *testing.T) {
	data := service.Aggregate(nil, time.Now())

	assert.Equal(t, 0.0, data.TotalRevenue)
	assert.Equal(t, 0, data.TotalOrders)
	assert.Empty(t, data.TopItems)
	assert.Empty(t, data.RevenueTrend)
	assert.Empty(t, data.RevenueByBranch)
	assert.Equal(t, 0, data.RepeatCustomers)
	assert.Empty(t, data.BusiestHours)
}

func TestAggregate_RevenueTrend(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	orders := []domain.Order{
		{Total: 20, CreatedAt: day(now, 0, 9)},
		{Total: 30, CreatedAt: day(now, 0, 18)},
		{Total: 15, CreatedAt: day(now, -3, 12)},
		{Total: 99, CreatedAt: day(now, -10, 12)}, // outside the window
	}

	data := service.Aggregate(orders, now)

	assert.Len(t, data.RevenueTrend, 7)
	assert.Equal(t, "2025-03-04", data.RevenueTrend[0].Date)
	assert.Equal(t, "2025-03-10", data.RevenueTrend[6].Date)

	// same-day totals sum, days without orders stay zero
	assert.Equal(t, 50.0, data.RevenueTrend[6].Revenue)
	assert.Equal(t, 15.0, data.RevenueTrend[3].Revenue)
	assert.Equal(t, 0.0, data.RevenueTrend[1].Revenue)

	assert.Equal(t, 164.0, data.TotalRevenue)
	assert.Equal(t, 4, data.TotalOrders)
}

func TestAggregate_TopItems(t *testing.T) {
	now := time.Now()

	orders := []domain.Order{
		{CreatedAt: now, Items: []domain.OrderItem{
			{ItemID: 1, Name: "Burger", Price: 10, Quantity: 2},
			{ItemID: 2, Name: "Fries", Price: 5, Quantity: 1},
		}},
		{CreatedAt: now, Items: []domain.OrderItem{
			{ItemID: 1, Name: "Burger", Price: 10, Quantity: 1},
			{ItemID: 3, Name: "Cola", Price: 3, Quantity: 4},
			{ItemID: 4, Name: "Pizza", Price: 12, Quantity: 1},
			{ItemID: 5, Name: "Salad", Price: 8, Quantity: 1},
			{ItemID: 6, Name: "Wrap", Price: 9, Quantity: 1},
		}},
	}

	data := service.Aggregate(orders, now)

	assert.LessOrEqual(t, len(data.TopItems), 5)
	assert.Equal(t, "Cola", data.TopItems[0].Name)
	assert.Equal(t, 4, data.TopItems[0].Sold)
	assert.Equal(t, "Burger", data.TopItems[1].Name)
	assert.Equal(t, 3, data.TopItems[1].Sold)
	assert.Equal(t, 30.0, data.TopItems[1].Revenue)

	for i := 1; i < len(data.TopItems); i++ {
		assert.GreaterOrEqual(t, data.TopItems[i-1].Sold, data.TopItems[i].Sold)
	}
}

func TestAggregate_RepeatCustomers(t *testing.T) {
	now := time.Now()

	orders := []domain.Order{
		{Phone: "555-1234", CreatedAt: now},
		{Phone: "555-1234", CreatedAt: now},
		{Customer: "Alice", CreatedAt: now}, // falls back to name
		{Customer: "Alice", CreatedAt: now},
		{Customer: "Bob", CreatedAt: now}, // single order
		{CreatedAt: now},                  // no key, dropped
		{CreatedAt: now},
	}

	data := service.Aggregate(orders, now)
	assert.Equal(t, 2, data.RepeatCustomers)
}

func TestAggregate_RevenueByBranch(t *testing.T) {
	now := time.Now()

	orders := []domain.Order{
		{Location: "Springfield", Total: 40, CreatedAt: now},
		{Location: "Springfield", Total: 10, CreatedAt: now},
		{Location: "Shelbyville", Total: 25, CreatedAt: now},
		{Total: 5, CreatedAt: now}, // no location
	}

	data := service.Aggregate(orders, now)

	byBranch := map[string]float64{}
	for _, b := range data.RevenueByBranch {
		byBranch[b.Branch] = b.Revenue
	}
	assert.Equal(t, 50.0, byBranch["Springfield"])
	assert.Equal(t, 25.0, byBranch["Shelbyville"])
	assert.Equal(t, 5.0, byBranch["Unknown"])
}

func TestAggregate_BusiestHours(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)

	orders := []domain.Order{
		{CreatedAt: day(now, 0, 12)},
		{CreatedAt: day(now, 0, 12)},
		{CreatedAt: day(now, 0, 12)},
		{CreatedAt: day(now, 0, 18)},
		{CreatedAt: day(now, 0, 18)},
		{CreatedAt: day(now, 0, 9)},
	}

	data := service.Aggregate(orders, now)

	assert.LessOrEqual(t, len(data.BusiestHours), 5)
	assert.Equal(t, domain.HourCount{Hour: "12:00", Count: 3}, data.BusiestHours[0])
	assert.Equal(t, domain.HourCount{Hour: "18:00", Count: 2}, data.BusiestHours[1])
	assert.Equal(t, domain.HourCount{Hour: "09:00", Count: 1}, data.BusiestHours[2])
}

func TestAnalyticsService_Compute(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	repo.On("ListOrders").Return([]domain.Order{
		{Total: 20, CreatedAt: time.Now()},
		{Total: 30, CreatedAt: time.Now()},
	}, nil).Once()

	svc := service.NewAnalyticsService(repo)
	data, err := svc.Compute()
	assert.NoError(t, err)
	assert.Equal(t, 50.0, data.TotalRevenue)
	assert.Equal(t, 2, data.TotalOrders)
	assert.Len(t, data.RevenueTrend, 7)
}
