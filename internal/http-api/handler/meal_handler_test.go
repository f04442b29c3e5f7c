package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/dto"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/middleware"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/models"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/service"
)

// MockMealService mocks the MealService interface
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) Create(ctx context.Context, restaurantID, personID int64, name string, price float64, rating string, notes *string) (*models.Meal, error) {
	args := m.Called(ctx, restaurantID, personID, name, price, rating, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) GetByRestaurant(ctx context.Context, restaurantID int64) ([]models.Meal, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealService) Get(ctx context.Context, restaurantID, id int64) (*models.Meal, error) {
	args := m.Called(ctx, restaurantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) Delete(ctx context.Context, restaurantID, id int64) error {
	args := m.Called(ctx, restaurantID, id)
	return args.Error(0)
}

// fakeIdentity stands in for the auth middleware in handler tests.
func fakeIdentity(personID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, int64(3))
		c.Set(middleware.ContextPersonID, personID)
		c.Next()
	}
}

func TestCreateMealHandler_Success(t *testing.T) {
	mockService := new(MockMealService)
	h := NewMealHandler(mockService)
	router := setupRouter()
	router.POST("/add_meal/:restaurant_id", fakeIdentity(7), h.Create)

	meal := &models.Meal{ID: 21, Name: "Pasta", Price: 12.50, Rating: "good", RestaurantID: 11, PersonID: 7}
	mockService.On("Create", mock.Anything, int64(11), int64(7), "Pasta", 12.50, "good", (*string)(nil)).
		Return(meal, nil)

	w := postJSON(router, "/add_meal/11", dto.CreateMealDTO{Name: "Pasta", Price: 12.50, Rating: "good"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.MealResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(21), response.ID)
	assert.Equal(t, 12.50, response.Price)
	mockService.AssertExpectations(t)
}

func TestCreateMealHandler_Duplicate(t *testing.T) {
	mockService := new(MockMealService)
	h := NewMealHandler(mockService)
	router := setupRouter()
	router.POST("/add_meal/:restaurant_id", fakeIdentity(7), h.Create)

	mockService.On("Create", mock.Anything, int64(11), int64(7), "Pasta", 12.50, "good", (*string)(nil)).
		Return(nil, service.ErrMealExists)

	w := postJSON(router, "/add_meal/11", dto.CreateMealDTO{Name: "Pasta", Price: 12.50, Rating: "good"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateMealHandler_NoIdentity(t *testing.T) {
	mockService := new(MockMealService)
	h := NewMealHandler(mockService)
	router := setupRouter()
	// no identity middleware mounted
	router.POST("/add_meal/:restaurant_id", h.Create)

	w := postJSON(router, "/add_meal/11", dto.CreateMealDTO{Name: "Pasta", Price: 12.50, Rating: "good"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListMealsHandler_RestaurantGone(t *testing.T) {
	mockService := new(MockMealService)
	h := NewMealHandler(mockService)
	router := setupRouter()
	router.GET("/meal/:restaurant_id", h.ListByRestaurant)

	mockService.On("GetByRestaurant", mock.Anything, int64(11)).Return(nil, service.ErrRestaurantNotFound)

	req, _ := http.NewRequest("GET", "/meal/11", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMealHandler_Success(t *testing.T) {
	mockService := new(MockMealService)
	h := NewMealHandler(mockService)
	router := setupRouter()
	router.DELETE("/meal/:restaurant_id/:id", h.Delete)

	mockService.On("Delete", mock.Anything, int64(11), int64(21)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/meal/11/21", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
