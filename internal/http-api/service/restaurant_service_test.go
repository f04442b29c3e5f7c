package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/repository"
)

// MockRestaurantRepository mocks the RestaurantRepository interface
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Create(ctx context.Context, rest *models.Restaurant) error {
	args := m.Called(ctx, rest)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetByID(ctx context.Context, id int64) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByName(ctx context.Context, name string) (*models.Restaurant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Search(ctx context.Context, filter repository.RestaurantFilter) ([]models.Restaurant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) DeleteCascade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTagRepository mocks the TagRepository interface
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) GetByRestaurant(restaurantID int64) ([]models.Tag, error) {
	args := m.Called(restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByNameAndRestaurant(name string, restaurantID int64) (*models.Tag, error) {
	args := m.Called(name, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) DeleteByNameAndRestaurant(name string, restaurantID int64) error {
	args := m.Called(name, restaurantID)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func newRestaurantService(restRepo *MockRestaurantRepository, tagRepo *MockTagRepository) RestaurantService {
	// nil cache: every cache call degrades to the repository
	return NewRestaurantService(restRepo, tagRepo, nil)
}

func TestCreateRestaurant_Success(t *testing.T) {
	restRepo := new(MockRestaurantRepository)
	tagRepo := new(MockTagRepository)
	svc := newRestaurantService(restRepo, tagRepo)

	restRepo.On("FindByName", mock.Anything, "Cafe X").Return(nil, gorm.ErrRecordNotFound)
	restRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Restaurant")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Restaurant).ID = 11
		}).Return(nil)

	rest := &models.Restaurant{Name: "Cafe X", Cuisine: "Italian", Rating: 4}
	err := svc.Create(context.Background(), rest)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), rest.ID)
	restRepo.AssertExpectations(t)
}

func TestCreateRestaurant_DuplicateName(t *testing.T) {
	restRepo := new(MockRestaurantRepository)
	tagRepo := new(MockTagRepository)
	svc := newRestaurantService(restRepo, tagRepo)

	restRepo.On("FindByName", mock.Anything, "Cafe X").Return(&models.Restaurant{ID: 1, Name: "Cafe X"}, nil)

	err := svc.Create(context.Background(), &models.Restaurant{Name: "Cafe X", Cuisine: "Italian", Rating: 4})

	assert.ErrorIs(t, err, ErrRestaurantExists)
	restRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRestaurant_PhoneLength(t *testing.T) {
	cases := []struct {
		phone string
		want  error
	}{
		{"0123456789", ErrInvalidPhone},      // 10: too short
		{"01234567890", nil},                 // 11: lower bound
		{"01234567890123", nil},              // 14: upper bound
		{"012345678901234", ErrInvalidPhone}, // 15: too long
	}

	for _, tc := range cases {
		restRepo := new(MockRestaurantRepository)
		tagRepo := new(MockTagRepository)
		svc := newRestaurantService(restRepo, tagRepo)

		if tc.want == nil {
			restRepo.On("FindByName", mock.Anything, "Cafe X").Return(nil, gorm.ErrRecordNotFound)
			restRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		}

		rest := &models.Restaurant{Name: "Cafe X", Cuisine: "Italian", Rating: 4, Phone: strPtr(tc.phone)}
		err := svc.Create(context.Background(), rest)

		if tc.want == nil {
			assert.NoError(t, err, "phone %q", tc.phone)
		} else {
			assert.ErrorIs(t, err, tc.want, "phone %q", tc.phone)
			// no row is persisted for an invalid phone
			restRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		}
	}
}

func TestCreateRestaurant_InvalidRating(t *testing.T) {
	restRepo := new(MockRestaurantRepository)
	tagRepo := new(MockTagRepository)
	svc := newRestaurantService(restRepo, tagRepo)

	for _, rating := range []int{0, -1, 6} {
		err := svc.Create(context.Background(), &models.Restaurant{Name: "Cafe X", Cuisine: "Italian", Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
	restRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRestaurant_MissingCuisine(t *testing.T) {
	restRepo := new(MockRestaurantRepository)
	tagRepo := new(MockTagRepository)
	svc := newRestaurantService(restRepo, tagRepo)

	err := svc.Create(context.Background(), &models.Restaurant{Name: "Cafe X", Rating: 4})

	assert.ErrorIs(t, err, ErrMissingCuisine)
}

func TestDeleteRestaurant_Cascades(t *testing.T) {
	restRepo := new(MockRestaurantRepository)
	tagRepo := new(MockTagRepository)
	svc := newRestaurantService(restRepo, tagRepo)

	// the repository delete is the cascading transaction
	restRepo.On("DeleteCascade", mock.Anything, int64(11)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 11))
	restRepo.AssertExpectations(t)
}

func TestDeleteRestaurant_AlreadyGone(t *testing.T) {
	restRepo := new(MockRestaurantRepository)
	tagRepo := new(MockTagRepository)
	svc := newRestaurantService(restRepo, tagRepo)

	restRepo.On("DeleteCascade", mock.Anything, int64(11)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 11)

	// a second delete of the same row reports not-found, not a fault
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestGetDetail_NotFound(t *testing.T) {
	restRepo := new(MockRestaurantRepository)
	tagRepo := new(MockTagRepository)
	svc := newRestaurantService(restRepo, tagRepo)

	restRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetDetail(context.Background(), 99)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestAddTag_Duplicate(t *testing.T) {
	restRepo := new(MockRestaurantRepository)
	tagRepo := new(MockTagRepository)
	svc := newRestaurantService(restRepo, tagRepo)

	restRepo.On("GetByID", mock.Anything, int64(11)).Return(&models.Restaurant{ID: 11}, nil)
	tagRepo.On("FindByNameAndRestaurant", "favorite", int64(11)).Return(&models.Tag{ID: 1, Name: "favorite"}, nil)

	_, err := svc.AddTag(context.Background(), 11, "favorite")

	assert.ErrorIs(t, err, ErrTagExists)
	tagRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddTag_Success(t *testing.T) {
	restRepo := new(MockRestaurantRepository)
	tagRepo := new(MockTagRepository)
	svc := newRestaurantService(restRepo, tagRepo)

	restRepo.On("GetByID", mock.Anything, int64(11)).Return(&models.Restaurant{ID: 11}, nil)
	tagRepo.On("FindByNameAndRestaurant", "favorite", int64(11)).Return(nil, gorm.ErrRecordNotFound)
	tagRepo.On("Create", mock.AnythingOfType("*models.Tag")).Return(nil)

	tag, err := svc.AddTag(context.Background(), 11, "favorite")

	assert.NoError(t, err)
	assert.Equal(t, "favorite", tag.Name)
	assert.Equal(t, int64(11), tag.RestaurantID)
}
