package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
)

// actorContextKey is the echo context key holding the authenticated actor.
const actorContextKey = "actor"

// tokenTTL is how long issued tokens stay valid.
const tokenTTL = 24 * time.Hour

var errNoActor = errors.New("no authenticated actor in request context")

// TokenIssuer signs and parses the HS256 session tokens carried in the
// Authorization header.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates a token issuer with the given signing secret.
func NewTokenIssuer(secret string) TokenIssuer {
	return TokenIssuer{secret: []byte(secret)}
}

// Issue signs a token carrying the employee's identity, role, and branch.
func (t TokenIssuer) Issue(emp *employee.Employee) (string, error) {
	if err := emp.Validate(); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":  emp.ID().String(),
		"name": emp.Name(),
		"role": emp.Role().String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	if emp.BranchID() != nil {
		claims["branch_id"] = emp.BranchID().String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// parseActor validates the token and reconstructs the acting employee context.
func (t TokenIssuer) parseActor(tokenString string) (employee.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return employee.Actor{}, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return employee.Actor{}, errors.New("invalid token payload")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return employee.Actor{}, errors.New("invalid token payload")
	}
	id, err := kernel.UUIDFromString(sub)
	if err != nil {
		return employee.Actor{}, err
	}

	role, ok := claims["role"].(string)
	if !ok {
		return employee.Actor{}, errors.New("invalid token payload")
	}

	var branchID *kernel.UUID
	if raw, branchOk := claims["branch_id"].(string); branchOk && raw != "" {
		bID, branchErr := kernel.UUIDFromString(raw)
		if branchErr != nil {
			return employee.Actor{}, branchErr
		}
		branchID = &bID
	}

	return employee.NewActor(id, employee.Role(role), branchID)
}

// AuthMiddleware authenticates the request and stores the actor in the
// request context.
func (t TokenIssuer) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing Authorization header")
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
		}

		actor, err := t.parseActor(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(actorContextKey, actor)
		return next(c)
	}
}

// RequireAdmin rejects non-admin actors. Must run after AuthMiddleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorFromContext(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
		}
		if actor.Role() != employee.Admin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

func actorFromContext(c echo.Context) (employee.Actor, error) {
	actor, ok := c.Get(actorContextKey).(employee.Actor)
	if !ok {
		return employee.Actor{}, errNoActor
	}
	if err := actor.Validate(); err != nil {
		return employee.Actor{}, err
	}
	return actor, nil
}
