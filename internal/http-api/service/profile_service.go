package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/repository"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrMissingPersonName = errors.New("name is required")
)

// Profile is the current account's view of itself.
type Profile struct {
	Account   *models.Account `json:"account"`
	MealCount int64           `json:"meal_count"`
}

type ProfileService interface {
	Get(accountID int64) (*Profile, error)
	UpdateName(accountID int64, name string) error
}

type profileService struct {
	accountRepo repository.AccountRepository
}

func NewProfileService(accountRepo repository.AccountRepository) ProfileService {
	return &profileService{accountRepo: accountRepo}
}

func (s *profileService) Get(accountID int64) (*Profile, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	mealCount, err := s.accountRepo.CountMealsByPerson(account.PersonID)
	if err != nil {
		return nil, err
	}

	return &Profile{Account: account, MealCount: mealCount}, nil
}

func (s *profileService) UpdateName(accountID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMissingPersonName
	}

	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	return s.accountRepo.UpdatePersonName(account.PersonID, name)
}
