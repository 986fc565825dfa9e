package service

import (
	"errors"

	"tastybites/internal/domain"
)

var (
	ErrInvalidPrice = errors.New("price must be non-negative")
	ErrEmptyTitle   = errors.New("title must not be empty")
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) Create(item *domain.MenuItem) error {
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	return s.repo.CreateMenuItem(item)
}

func (s *MenuService) List(branchID *int) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(branchID)
}

func (s *MenuService) Get(id int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(id)
}

func (s *MenuService) Update(item *domain.MenuItem) error {
	if item.Price < 0 {
		return ErrInvalidPrice
	}
	return s.repo.UpdateMenuItem(item)
}

func (s *MenuService) Delete(id int) (int64, error) {
	return s.repo.DeleteMenuItem(id)
}

var _ MenuServiceInterface = (*MenuService)(nil)

type OfferService struct {
	repo OfferRepository
}

func NewOfferService(repo OfferRepository) *OfferService {
	return &OfferService{repo: repo}
}

func (s *OfferService) Create(offer *domain.Offer) error {
	if offer.Title == "" {
		return ErrEmptyTitle
	}
	return s.repo.CreateOffer(offer)
}

func (s *OfferService) List() ([]domain.Offer, error) {
	return s.repo.ListOffers()
}

func (s *OfferService) Update(offer *domain.Offer) error {
	if offer.Title == "" {
		return ErrEmptyTitle
	}
	return s.repo.UpdateOffer(offer)
}

func (s *OfferService) Delete(id int) (int64, error) {
	return s.repo.DeleteOffer(id)
}

var _ OfferServiceInterface = (*OfferService)(nil)

type BranchService struct {
	repo BranchRepository
}

func NewBranchService(repo BranchRepository) *BranchService {
	return &BranchService{repo: repo}
}

func (s *BranchService) Create(branch *domain.Branch) error {
	return s.repo.CreateBranch(branch)
}

func (s *BranchService) List() ([]domain.Branch, error) {
	return s.repo.ListBranches()
}

func (s *BranchService) Update(branch *domain.Branch) error {
	return s.repo.UpdateBranch(branch)
}

func (s *BranchService) Delete(id int) (int64, error) {
	return s.repo.DeleteBranch(id)
}

var _ BranchServiceInterface = (*BranchService)(nil)

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(key string) (string, error) {
	return s.repo.GetSetting(key)
}

func (s *SettingsService) Set(key, value string) error {
	return s.repo.UpsertSetting(key, value)
}

var _ SettingsServiceInterface = (*SettingsService)(nil)
