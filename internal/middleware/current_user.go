package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"taskapi/internal/auth"
	"taskapi/internal/model"
	"taskapi/internal/repository"
)

const currentUserKey = "current_user"

// LoadUser resolves the JWT claims set by the echo-jwt middleware into a full
// user record and attaches it to the request context. Requests whose claims do
// not resolve to an existing user are rejected; deleted users hold dead
// tokens.
func LoadUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication credentials were not provided")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user attached by LoadUser. It is only
// valid inside handlers behind that middleware.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}
