package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"ecotrack/internal/auth"
	"ecotrack/internal/config"
	"ecotrack/internal/errors"
	"ecotrack/internal/handler"
)

// maxBodySize caps request bodies, including posted reference documents.
const maxBodySize = "1M"

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	User      *handler.UserHandler
	Auth      *handler.AuthHandler
	Activity  *handler.ActivityHandler
	Insight   *handler.InsightHandler
	Reference *handler.ReferenceHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	h Handlers,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(maxBodySize))
	if cfg.RateLimitRPS > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS))))
	}

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users", h.User.CreateUser)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.GET("/categories", h.Reference.ListCategories)
	api.GET("/categories/:id/suggestions", h.Reference.ListSuggestions)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), rejectRevoked(tokenStore))

	secured.POST("/auth/logout", h.Auth.Logout)
	secured.POST("/seed/reference", h.Reference.SeedReference)

	// User routes
	secured.GET("/users/:id", h.User.GetUser)
	secured.GET("/users/:id/activities", h.Activity.ListActivities)
	secured.GET("/users/:id/logs", h.Activity.ListLogs)
	secured.GET("/users/:id/recommendations", h.Insight.GetRecommendations)
	secured.GET("/users/:id/dashboard", h.Insight.GetDashboard)

	// Activity routes
	secured.POST("/activities", h.Activity.LogActivity)
}

// rejectRevoked refuses access tokens that were blacklisted on logout.
func rejectRevoked(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := handler.ClaimsFromContext(c)
			if claims == nil || claims.ID == "" || tokenStore == nil {
				return next(c)
			}
			revoked, err := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if err == nil && revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "token has been revoked",
					Code:  "TOKEN_REVOKED",
				})
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
