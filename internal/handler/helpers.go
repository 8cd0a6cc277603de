package handler

import (
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"ecotrack/internal/auth"
	"ecotrack/internal/errors"
)

// contextKeyUser is where the JWT middleware stores the parsed token.
const contextKeyUser = "user"

func errorResponse(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message, code string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, badRequest("invalid "+name, "INVALID_ID")
	}
	return uint(id), nil
}

// ClaimsFromContext returns the claims of the authenticated request, or nil.
func ClaimsFromContext(c echo.Context) *auth.Claims {
	token, ok := c.Get(contextKeyUser).(*jwt.Token)
	if !ok {
		return nil
	}
	claims, _ := token.Claims.(*auth.Claims)
	return claims
}

// authorizeUser rejects tokens that address another user's data.
// Requests without a token are left to the routing layer.
func authorizeUser(c echo.Context, userID uint) error {
	claims := ClaimsFromContext(c)
	if claims != nil && claims.UserID != userID {
		return errorResponse(errors.ErrForbidden)
	}
	return nil
}

// userParam parses the :id path parameter and checks it against the token.
func userParam(c echo.Context) (uint, error) {
	userID, err := parseID(c, "id")
	if err != nil {
		return 0, err
	}
	if err := authorizeUser(c, userID); err != nil {
		return 0, err
	}
	return userID, nil
}
