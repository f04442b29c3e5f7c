package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pliabraaten/restaurant-tracker/internal/config"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/handler"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/middleware"
	"github.com/pliabraaten/restaurant-tracker/internal/http-api/service"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	Restaurant *handler.RestaurantHandler
	Meal       *handler.MealHandler
	Search     *handler.SearchHandler
	Profile    *handler.ProfileHandler
}

// SetupRouter configures the Gin engine and mounts every route. The path
// shapes follow the original page routes; responses are JSON.
func SetupRouter(cfg *config.Config, h Handlers, authService service.AuthService) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Public routes
	r.GET("/about", handler.About)
	r.GET("/health", handler.Health)

	// Credential endpoints carry a per-IP rate limit
	credentials := r.Group("/")
	credentials.Use(middleware.RateLimit(1, 5))
	{
		credentials.POST("/register", h.Auth.Register)
		credentials.POST("/login", h.Auth.Login)
		credentials.POST("/refresh", h.Auth.RefreshToken)
	}

	// Everything else requires an authenticated session
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.POST("/logout", h.Auth.Logout)

		protected.GET("/", h.Restaurant.Home)
		protected.GET("/restaurant/:id", h.Restaurant.Detail)
		protected.DELETE("/restaurant/:id", h.Restaurant.Delete)
		protected.POST("/add_rest", h.Restaurant.Create)
		protected.POST("/restaurant/:id/tags", h.Restaurant.AddTag)
		protected.DELETE("/restaurant/:id/tags/:name", h.Restaurant.RemoveTag)

		protected.GET("/meal/:restaurant_id", h.Meal.ListByRestaurant)
		protected.GET("/meal/:restaurant_id/:id", h.Meal.Detail)
		protected.DELETE("/meal/:restaurant_id/:id", h.Meal.Delete)
		protected.POST("/add_meal/:restaurant_id", h.Meal.Create)

		protected.GET("/search", h.Search.Search)
		protected.GET("/favorites", h.Search.Favorites)

		protected.GET("/user", h.Profile.Get)
		protected.PUT("/user", h.Profile.Update)
	}

	return r
}
