package service

import (
	"context"
	"errors"

	"tastybites/internal/domain"
)

var (
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 5")
	ErrDuplicateFeedback = errors.New("feedback already exists for this order")
)

type FeedbackService struct {
	repo   FeedbackRepository
	orders OrderRepository
	marker FeedbackMarker
}

func NewFeedbackService(repo FeedbackRepository, orders OrderRepository, marker FeedbackMarker) *FeedbackService {
	return &FeedbackService{repo: repo, orders: orders, marker: marker}
}

// Submit records one feedback entry for an order. Uniqueness per order is a
// soft constraint: the marker and the existing-row check catch the common
// case but nothing enforces it atomically.
func (s *FeedbackService) Submit(ctx context.Context, fb *domain.Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return ErrRatingOutOfRange
	}

	order, err := s.orders.GetOrder(fb.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	key := s.marker.FeedbackMarkerKey(fb.OrderID)
	if exists, _ := s.marker.Exists(ctx, key); exists {
		return ErrDuplicateFeedback
	}
	if existing, err := s.repo.GetFeedbackForOrder(fb.OrderID); err == nil && existing != nil {
		return ErrDuplicateFeedback
	}

	if err := s.repo.InsertFeedback(fb); err != nil {
		return err
	}

	_ = s.marker.SetMarker(ctx, key)
	return nil
}

// ForOrder returns (nil, nil) when no feedback has been left yet.
func (s *FeedbackService) ForOrder(orderID int) (*domain.Feedback, error) {
	return s.repo.GetFeedbackForOrder(orderID)
}

func (s *FeedbackService) ListAll() ([]domain.Feedback, error) {
	return s.repo.ListFeedback()
}

var _ FeedbackServiceInterface = (*FeedbackService)(nil)
