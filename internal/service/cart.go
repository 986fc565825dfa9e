package service

import (
	"context"
	"errors"

	"tastybites/internal/domain"
)

var (
	ErrItemUnavailable = errors.New("menu item is not available")
	ErrEmptyCart       = errors.New("cart is empty")
)

type CartService struct {
	store  CartStore
	menu   MenuRepository
	orders OrderServiceInterface
}

func NewCartService(store CartStore, menu MenuRepository, orders OrderServiceInterface) *CartService {
	return &CartService{store: store, menu: menu, orders: orders}
}

func (s *CartService) Get(ctx context.Context, session string) (*domain.Cart, error) {
	return s.store.GetCart(ctx, session)
}

// Add merges by item id: an item already in the cart gets its quantity
// incremented by one, otherwise a new entry with quantity 1 is appended.
func (s *CartService) Add(ctx context.Context, session string, itemID int) (*domain.Cart, error) {
	item, err := s.menu.GetMenuItem(itemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	cart, err := s.store.GetCart(ctx, session)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Entries {
		if cart.Entries[i].ItemID == itemID {
			cart.Entries[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		cart.Entries = append(cart.Entries, domain.CartEntry{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		})
	}

	if err := s.store.SaveCart(ctx, session, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove drops the whole entry; removal is all-or-nothing, not a decrement.
func (s *CartService) Remove(ctx context.Context, session string, itemID int) (*domain.Cart, error) {
	cart, err := s.store.GetCart(ctx, session)
	if err != nil {
		return nil, err
	}

	entries := cart.Entries[:0]
	for _, entry := range cart.Entries {
		if entry.ItemID != itemID {
			entries = append(entries, entry)
		}
	}
	cart.Entries = entries

	if err := s.store.SaveCart(ctx, session, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, session string) error {
	return s.store.DeleteCart(ctx, session)
}

// Checkout converts the cart into an order placement and clears the cart
// only after the order write succeeds.
func (s *CartService) Checkout(ctx context.Context, session string, order *domain.Order) error {
	cart, err := s.store.GetCart(ctx, session)
	if err != nil {
		return err
	}
	if len(cart.Entries) == 0 {
		return ErrEmptyCart
	}

	order.Items = make([]domain.OrderItem, 0, len(cart.Entries))
	for _, entry := range cart.Entries {
		order.Items = append(order.Items, domain.OrderItem{
			ItemID:   entry.ItemID,
			Name:     entry.Name,
			Price:    entry.Price,
			Quantity: entry.Quantity,
		})
	}

	if err := s.orders.Place(ctx, order); err != nil {
		return err
	}

	return s.store.DeleteCart(ctx, session)
}

var _ CartServiceInterface = (*CartService)(nil)
