package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pliabraaten/restaurant-tracker/internal/http-api/dto"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/middleware"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
	authService    service.AuthService
}

func NewProfileHandler(profileService service.ProfileService, authService service.AuthService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authService:    authService,
	}
}

// Get shows the current account's profile
// GET /user
func (h *ProfileHandler) Get(c *gin.Context) {
	accountID, exists := c.Get(middleware.ContextAccountID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	profile, err := h.profileService.Get(accountID.(int64))
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load profile"})
		return
	}

	resp := dto.ProfileResponse{
		AccountID: profile.Account.ID,
		Username:  profile.Account.Username,
		MealCount: profile.MealCount,
		CreatedAt: profile.Account.CreatedAt,
		LastLogin: profile.Account.LastLogin,
	}
	if profile.Account.Person != nil {
		resp.Name = profile.Account.Person.Name
	}
	c.JSON(http.StatusOK, resp)
}

// Update changes the display name and/or password of the current account
// PUT /user
func (h *ProfileHandler) Update(c *gin.Context) {
	accountID, exists := c.Get(middleware.ContextAccountID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		if err := h.profileService.UpdateName(accountID.(int64), *req.Name); err != nil {
			if errors.Is(err, service.ErrMissingPersonName) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update profile"})
			return
		}
	}

	if req.NewPassword != nil {
		current := ""
		if req.CurrentPassword != nil {
			current = *req.CurrentPassword
		}
		if err := h.authService.ChangePassword(accountID.(int64), current, *req.NewPassword); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.Is(err, service.ErrMissingField):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not change password"})
			}
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
