package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastybites/internal/domain"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t mockConstructorTestingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderRepository) CreateOrder(order *domain.Order) error {
	ret := _m.Called(order)
	return ret.Error(0)
}

func (_m *OrderRepository) ListOrders() ([]domain.Order, error) {
	ret := _m.Called()
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	ret := _m.Called(id)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(id int, status string) error {
	ret := _m.Called(id, status)
	return ret.Error(0)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t mockConstructorTestingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuRepository) CreateMenuItem(item *domain.MenuItem) error {
	ret := _m.Called(item)
	return ret.Error(0)
}

func (_m *MenuRepository) ListMenuItems(branchID *int) ([]domain.MenuItem, error) {
	ret := _m.Called(branchID)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	ret := _m.Called(id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) UpdateMenuItem(item *domain.MenuItem) error {
	ret := _m.Called(item)
	return ret.Error(0)
}

func (_m *MenuRepository) DeleteMenuItem(id int) (int64, error) {
	ret := _m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

type FeedbackRepository struct {
	mock.Mock
}

func NewFeedbackRepository(t mockConstructorTestingT) *FeedbackRepository {
	m := &FeedbackRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *FeedbackRepository) InsertFeedback(fb *domain.Feedback) error {
	ret := _m.Called(fb)
	return ret.Error(0)
}

func (_m *FeedbackRepository) GetFeedbackForOrder(orderID int) (*domain.Feedback, error) {
	ret := _m.Called(orderID)
	var r0 *domain.Feedback
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Feedback)
	}
	return r0, ret.Error(1)
}

func (_m *FeedbackRepository) ListFeedback() ([]domain.Feedback, error) {
	ret := _m.Called()
	var r0 []domain.Feedback
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Feedback)
	}
	return r0, ret.Error(1)
}

type AccountRepository struct {
	mock.Mock
}

func NewAccountRepository(t mockConstructorTestingT) *AccountRepository {
	m := &AccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AccountRepository) CreateUser(user *domain.User, fullName string) error {
	ret := _m.Called(user, fullName)
	return ret.Error(0)
}

func (_m *AccountRepository) GetUserByEmail(email string) (*domain.User, error) {
	ret := _m.Called(email)
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *AccountRepository) GetProfile(userID int) (*domain.Profile, error) {
	ret := _m.Called(userID)
	var r0 *domain.Profile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Profile)
	}
	return r0, ret.Error(1)
}

func (_m *AccountRepository) UpdateProfile(profile *domain.Profile) error {
	ret := _m.Called(profile)
	return ret.Error(0)
}

type OrderEventPublisher struct {
	mock.Mock
}

func NewOrderEventPublisher(t mockConstructorTestingT) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}
