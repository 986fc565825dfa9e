package service

import (
	"context"

	"tastybites/internal/domain"
)

type MenuRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(branchID *int) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(id int) (int64, error)
}

type OfferRepository interface {
	CreateOffer(offer *domain.Offer) error
	ListOffers() ([]domain.Offer, error)
	UpdateOffer(offer *domain.Offer) error
	DeleteOffer(id int) (int64, error)
}

type BranchRepository interface {
	CreateBranch(branch *domain.Branch) error
	ListBranches() ([]domain.Branch, error)
	UpdateBranch(branch *domain.Branch) error
	DeleteBranch(id int) (int64, error)
}

type SettingsRepository interface {
	GetSetting(key string) (string, error)
	UpsertSetting(key, value string) error
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	ListOrders() ([]domain.Order, error)
	GetOrder(id int) (*domain.Order, error)
	UpdateOrderStatus(id int, status string) error
}

type FeedbackRepository interface {
	InsertFeedback(fb *domain.Feedback) error
	GetFeedbackForOrder(orderID int) (*domain.Feedback, error)
	ListFeedback() ([]domain.Feedback, error)
}

type AccountRepository interface {
	CreateUser(user *domain.User, fullName string) error
	GetUserByEmail(email string) (*domain.User, error)
	GetProfile(userID int) (*domain.Profile, error)
	UpdateProfile(profile *domain.Profile) error
}

type SessionStore interface {
	SaveSession(ctx context.Context, token string, userID int) error
	SessionUserID(ctx context.Context, token string) (int, error)
	DeleteSession(ctx context.Context, token string) error
}

type CartStore interface {
	GetCart(ctx context.Context, session string) (*domain.Cart, error)
	SaveCart(ctx context.Context, session string, cart *domain.Cart) error
	DeleteCart(ctx context.Context, session string) error
}

type FeedbackMarker interface {
	FeedbackMarkerKey(orderID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type MenuServiceInterface interface {
	Create(item *domain.MenuItem) error
	List(branchID *int) ([]domain.MenuItem, error)
	Get(id int) (*domain.MenuItem, error)
	Update(item *domain.MenuItem) error
	Delete(id int) (int64, error)
}

type OfferServiceInterface interface {
	Create(offer *domain.Offer) error
	List() ([]domain.Offer, error)
	Update(offer *domain.Offer) error
	Delete(id int) (int64, error)
}

type BranchServiceInterface interface {
	Create(branch *domain.Branch) error
	List() ([]domain.Branch, error)
	Update(branch *domain.Branch) error
	Delete(id int) (int64, error)
}

type SettingsServiceInterface interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, order *domain.Order) error
	List() ([]domain.Order, error)
	Track(id int) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, id, userID int, status string) (*domain.Order, error)
	QRCode(orderID int) ([]byte, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, session string) (*domain.Cart, error)
	Add(ctx context.Context, session string, itemID int) (*domain.Cart, error)
	Remove(ctx context.Context, session string, itemID int) (*domain.Cart, error)
	Clear(ctx context.Context, session string) error
	Checkout(ctx context.Context, session string, order *domain.Order) error
}

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, fb *domain.Feedback) error
	ForOrder(orderID int) (*domain.Feedback, error)
	ListAll() ([]domain.Feedback, error)
}

type AnalyticsServiceInterface interface {
	Compute() (domain.AnalyticsData, error)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, email, password, fullName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (int, error)
	Profile(userID int) (*domain.Profile, error)
	UpdateProfile(profile *domain.Profile) error
	IsAdmin(userID int) (bool, error)
}
