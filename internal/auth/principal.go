package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/OlegMusatov3000/BlitzMarket/internal/policy"
)

// PrincipalFromContext resolves the calling identity from the JWT the
// echo-jwt middleware parsed into the context.
func PrincipalFromContext(c echo.Context) (policy.Principal, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return policy.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return policy.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	return policy.Principal{
		ID:       claims.UserID,
		Role:     claims.Role,
		IsActive: claims.IsActive,
	}, nil
}
