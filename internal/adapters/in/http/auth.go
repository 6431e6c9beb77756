package http

import (
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

// Claims are the bearer token claims issued by the identity provider.
// Subject is the user id; Role is the role the caller acts in and is one of
// buyer, seller, admin or system. System tokens need no subject.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Actor turns the claims into the caller of a lifecycle operation.
func (c Claims) Actor() (order.Actor, error) {
	role, err := order.ParseRole(c.Role)
	if err != nil {
		return order.Actor{}, err
	}
	if role == order.RoleSystem {
		return order.SystemActor(), nil
	}

	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return order.Actor{}, err
	}
	return order.NewActor(id, role)
}

// Authenticate verifies HS256 bearer tokens signed with secret and stores the
// caller on the echo context. Tokens must carry an expiry.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	keyFunc := func(*jwt.Token) (any, error) {
		return secret, nil
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			claims := &Claims{}
			if _, err = parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			caller, err := claims.Actor()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			c.Set(callerContextKey, caller)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errors.New("missing bearer token")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

// callerOf returns the authenticated caller. Routes are only reachable
// through Authenticate, so a missing caller is a wiring error.
func callerOf(c echo.Context) (order.Actor, error) {
	caller, ok := c.Get(callerContextKey).(order.Actor)
	if !ok {
		return order.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return caller, nil
}
