package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastybites/internal/domain"
)

type CartStore struct {
	mock.Mock
}

func NewCartStore(t mockConstructorTestingT) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CartStore) GetCart(ctx context.Context, session string) (*domain.Cart, error) {
	ret := _m.Called(ctx, session)
	var r0 *domain.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartStore) SaveCart(ctx context.Context, session string, cart *domain.Cart) error {
	ret := _m.Called(ctx, session, cart)
	return ret.Error(0)
}

func (_m *CartStore) DeleteCart(ctx context.Context, session string) error {
	ret := _m.Called(ctx, session)
	return ret.Error(0)
}

type SessionStore struct {
	mock.Mock
}

func NewSessionStore(t mockConstructorTestingT) *SessionStore {
	m := &SessionStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *SessionStore) SaveSession(ctx context.Context, token string, userID int) error {
	ret := _m.Called(ctx, token, userID)
	return ret.Error(0)
}

func (_m *SessionStore) SessionUserID(ctx context.Context, token string) (int, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(int), ret.Error(1)
}

func (_m *SessionStore) DeleteSession(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)
	return ret.Error(0)
}

type FeedbackMarker struct {
	mock.Mock
}

func NewFeedbackMarker(t mockConstructorTestingT) *FeedbackMarker {
	m := &FeedbackMarker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *FeedbackMarker) FeedbackMarkerKey(orderID int) string {
	ret := _m.Called(orderID)
	return ret.String(0)
}

func (_m *FeedbackMarker) Exists(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

func (_m *FeedbackMarker) SetMarker(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}
