package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "tastybites/internal/api/http"
	"tastybites/internal/domain"
	"tastybites/internal/mocks"
	"tastybites/internal/service"
)

type handlerMocks struct {
	orders    *mocks.OrderServiceInterface
	cart      *mocks.CartServiceInterface
	feedback  *mocks.FeedbackServiceInterface
	analytics *mocks.AnalyticsServiceInterface
	auth      *mocks.AuthServiceInterface
	mailer    *mocks.Mailer
}

func newTestServer(t *testing.T) (http.Handler, *handlerMocks) {
	m := &handlerMocks{
		orders:    mocks.NewOrderServiceInterface(t),
		cart:      mocks.NewCartServiceInterface(t),
		feedback:  mocks.NewFeedbackServiceInterface(t),
		analytics: mocks.NewAnalyticsServiceInterface(t),
		auth:      mocks.NewAuthServiceInterface(t),
		mailer:    mocks.NewMailer(t),
	}
	handler := &httpapi.Handler{
		Orders:    m.orders,
		Cart:      m.cart,
		Feedback:  m.feedback,
		Analytics: m.analytics,
		Auth:      m.auth,
		Mailer:    m.mailer,
	}
	return httpapi.NewRouter(handler), m
}

func doRequest(router http.Handler, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_PlaceOrder(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		prepareMocks   func(m *handlerMocks)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"customer":"Alice","location":"Table 4","items":[{"item_id":1,"name":"Burger","price":10,"quantity":2}]}`,
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("Place", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
					return o.Customer == "Alice" && len(o.Items) == 1
				})).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "error_invalid_json",
			body:           `{"customer":`,
			prepareMocks:   func(m *handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error_validation",
			body: `{"customer":"Alice","location":"Table 4","items":[]}`,
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("Place", mock.Anything, mock.Anything).
					Return(service.ErrEmptyOrder).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestServer(t)
			testCase.prepareMocks(m)

			rec := doRequest(router, "POST", "/api/orders", []byte(testCase.body), nil)
			assert.Equal(t, testCase.expectedStatus, rec.Code)
		})
	}
}

func TestHandler_TrackOrder_NotFound(t *testing.T) {
	router, m := newTestServer(t)
	m.orders.On("Track", 999).Return(nil, nil).Once()

	rec := doRequest(router, "GET", "/api/orders/track/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["found"])
}

func TestHandler_UpdateOrderStatus(t *testing.T) {
	adminHeaders := map[string]string{"Authorization": "Bearer admintoken"}

	tests := []struct {
		name           string
		prepareMocks   func(m *handlerMocks)
		expectedStatus int
	}{
		{
			name: "success",
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("AdvanceStatus", mock.Anything, 7, 1, domain.StatusPreparing).
					Return(&domain.Order{ID: 7, Status: domain.StatusPreparing}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "error_illegal_transition",
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("AdvanceStatus", mock.Anything, 7, 1, domain.StatusPreparing).
					Return(nil, service.ErrInvalidTransition).Once()
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "error_not_found",
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("AdvanceStatus", mock.Anything, 7, 1, domain.StatusPreparing).
					Return(nil, service.ErrOrderNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestServer(t)
			m.auth.On("Authenticate", mock.Anything, "admintoken").Return(1, nil)
			m.auth.On("IsAdmin", 1).Return(true, nil).Once()
			testCase.prepareMocks(m)

			rec := doRequest(router, "PUT", "/api/orders/7/status",
				[]byte(`{"status":"preparing"}`), adminHeaders)
			assert.Equal(t, testCase.expectedStatus, rec.Code)
		})
	}
}

func TestHandler_AdminGate(t *testing.T) {
	t.Run("missing_token", func(t *testing.T) {
		router, _ := newTestServer(t)
		rec := doRequest(router, "GET", "/api/analytics", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non_admin", func(t *testing.T) {
		router, m := newTestServer(t)
		m.auth.On("Authenticate", mock.Anything, "usertoken").Return(2, nil).Once()
		m.auth.On("IsAdmin", 2).Return(false, nil).Once()

		rec := doRequest(router, "GET", "/api/analytics", nil,
			map[string]string{"Authorization": "Bearer usertoken"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin", func(t *testing.T) {
		router, m := newTestServer(t)
		m.auth.On("Authenticate", mock.Anything, "admintoken").Return(1, nil).Once()
		m.auth.On("IsAdmin", 1).Return(true, nil).Once()
		m.analytics.On("Compute").Return(domain.AnalyticsData{TotalOrders: 3}, nil).Once()

		rec := doRequest(router, "GET", "/api/analytics", nil,
			map[string]string{"Authorization": "Bearer admintoken"})
		assert.Equal(t, http.StatusOK, rec.Code)

		var data domain.AnalyticsData
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		assert.Equal(t, 3, data.TotalOrders)
	})
}

func TestHandler_CartSession(t *testing.T) {
	t.Run("missing_session", func(t *testing.T) {
		router, _ := newTestServer(t)
		rec := doRequest(router, "GET", "/api/cart", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("add_item", func(t *testing.T) {
		router, m := newTestServer(t)
		m.cart.On("Add", mock.Anything, "s1", 1).Return(&domain.Cart{Entries: []domain.CartEntry{
			{ItemID: 1, Name: "Burger", Price: 10, Quantity: 1},
		}}, nil).Once()

		rec := doRequest(router, "POST", "/api/cart/items",
			[]byte(`{"item_id":1}`), map[string]string{"X-Session-Id": "s1"})
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Entries []domain.CartEntry `json:"entries"`
			Total   float64            `json:"total"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Entries, 1)
		assert.Equal(t, 10.0, body.Total)
	})

	t.Run("add_unavailable_item", func(t *testing.T) {
		router, m := newTestServer(t)
		m.cart.On("Add", mock.Anything, "s1", 2).
			Return(nil, service.ErrItemUnavailable).Once()

		rec := doRequest(router, "POST", "/api/cart/items",
			[]byte(`{"item_id":2}`), map[string]string{"X-Session-Id": "s1"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_SubmitFeedback_Duplicate(t *testing.T) {
	router, m := newTestServer(t)
	m.auth.On("Authenticate", mock.Anything, "usertoken").Return(2, nil).Once()
	m.feedback.On("Submit", mock.Anything, mock.MatchedBy(func(fb *domain.Feedback) bool {
		return fb.OrderID == 4 && fb.UserID == 2
	})).Return(service.ErrDuplicateFeedback).Once()

	rec := doRequest(router, "POST", "/api/feedback",
		[]byte(`{"order_id":4,"rating":5}`),
		map[string]string{"Authorization": "Bearer usertoken"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_SendStatusNotification(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		prepareMocks   func(m *handlerMocks)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"email":"a@b.com","orderId":3,"status":"ready"}`,
			prepareMocks: func(m *handlerMocks) {
				m.mailer.On("SendStatusEmail", mock.Anything, "a@b.com", 3, "ready").
					Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error_missing_fields",
			body:           `{"email":"a@b.com"}`,
			prepareMocks:   func(m *handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error_send_failure",
			body: `{"email":"a@b.com","orderId":3,"status":"ready"}`,
			prepareMocks: func(m *handlerMocks) {
				m.mailer.On("SendStatusEmail", mock.Anything, "a@b.com", 3, "ready").
					Return(assert.AnError).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := newTestServer(t)
			testCase.prepareMocks(m)

			rec := doRequest(router, "POST", "/api/notifications/order-status",
				[]byte(testCase.body), nil)
			assert.Equal(t, testCase.expectedStatus, rec.Code)
		})
	}
}

func TestHandler_TrackOrder_Found(t *testing.T) {
	router, m := newTestServer(t)
	m.orders.On("Track", 12).Return(&domain.Order{
		ID:        12,
		Customer:  "Bob",
		Status:    domain.StatusPreparing,
		Total:     25,
		CreatedAt: time.Now(),
	}, nil).Once()

	rec := doRequest(router, "GET", "/api/orders/track/12", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var order domain.Order
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, 12, order.ID)
	assert.Equal(t, domain.StatusPreparing, order.Status)
}
