package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastybites/internal/domain"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t mockConstructorTestingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderServiceInterface) Place(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderServiceInterface) List() ([]domain.Order, error) {
	ret := _m.Called()
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Track(id int) (*domain.Order, error) {
	ret := _m.Called(id)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) AdvanceStatus(ctx context.Context, id, userID int, status string) (*domain.Order, error) {
	ret := _m.Called(ctx, id, userID, status)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRCode(orderID int) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t mockConstructorTestingT) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CartServiceInterface) Get(ctx context.Context, session string) (*domain.Cart, error) {
	ret := _m.Called(ctx, session)
	var r0 *domain.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) Add(ctx context.Context, session string, itemID int) (*domain.Cart, error) {
	ret := _m.Called(ctx, session, itemID)
	var r0 *domain.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) Remove(ctx context.Context, session string, itemID int) (*domain.Cart, error) {
	ret := _m.Called(ctx, session, itemID)
	var r0 *domain.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartServiceInterface) Clear(ctx context.Context, session string) error {
	ret := _m.Called(ctx, session)
	return ret.Error(0)
}

func (_m *CartServiceInterface) Checkout(ctx context.Context, session string, order *domain.Order) error {
	ret := _m.Called(ctx, session, order)
	return ret.Error(0)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t mockConstructorTestingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuServiceInterface) Create(item *domain.MenuItem) error {
	ret := _m.Called(item)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) List(branchID *int) ([]domain.MenuItem, error) {
	ret := _m.Called(branchID)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Get(id int) (*domain.MenuItem, error) {
	ret := _m.Called(id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Update(item *domain.MenuItem) error {
	ret := _m.Called(item)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) Delete(id int) (int64, error) {
	ret := _m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

type FeedbackServiceInterface struct {
	mock.Mock
}

func NewFeedbackServiceInterface(t mockConstructorTestingT) *FeedbackServiceInterface {
	m := &FeedbackServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *FeedbackServiceInterface) Submit(ctx context.Context, fb *domain.Feedback) error {
	ret := _m.Called(ctx, fb)
	return ret.Error(0)
}

func (_m *FeedbackServiceInterface) ForOrder(orderID int) (*domain.Feedback, error) {
	ret := _m.Called(orderID)
	var r0 *domain.Feedback
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Feedback)
	}
	return r0, ret.Error(1)
}

func (_m *FeedbackServiceInterface) ListAll() ([]domain.Feedback, error) {
	ret := _m.Called()
	var r0 []domain.Feedback
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Feedback)
	}
	return r0, ret.Error(1)
}

type AnalyticsServiceInterface struct {
	mock.Mock
}

func NewAnalyticsServiceInterface(t mockConstructorTestingT) *AnalyticsServiceInterface {
	m := &AnalyticsServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AnalyticsServiceInterface) Compute() (domain.AnalyticsData, error) {
	ret := _m.Called()
	return ret.Get(0).(domain.AnalyticsData), ret.Error(1)
}

type AuthServiceInterface struct {
	mock.Mock
}

func NewAuthServiceInterface(t mockConstructorTestingT) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AuthServiceInterface) Register(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	ret := _m.Called(ctx, email, password, fullName)
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	ret := _m.Called(ctx, email, password)
	var r1 *domain.User
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*domain.User)
	}
	return ret.String(0), r1, ret.Error(2)
}

func (_m *AuthServiceInterface) Logout(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)
	return ret.Error(0)
}

func (_m *AuthServiceInterface) Authenticate(ctx context.Context, token string) (int, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(int), ret.Error(1)
}

func (_m *AuthServiceInterface) Profile(userID int) (*domain.Profile, error) {
	ret := _m.Called(userID)
	var r0 *domain.Profile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Profile)
	}
	return r0, ret.Error(1)
}

func (_m *AuthServiceInterface) UpdateProfile(profile *domain.Profile) error {
	ret := _m.Called(profile)
	return ret.Error(0)
}

func (_m *AuthServiceInterface) IsAdmin(userID int) (bool, error) {
	ret := _m.Called(userID)
	return ret.Bool(0), ret.Error(1)
}

type Mailer struct {
	mock.Mock
}

func NewMailer(t mockConstructorTestingT) *Mailer {
	m := &Mailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Mailer) SendStatusEmail(ctx context.Context, email string, orderID int, status string) error {
	ret := _m.Called(ctx, email, orderID, status)
	return ret.Error(0)
}
