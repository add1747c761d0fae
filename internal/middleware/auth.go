package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/ownership"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
)

// AuthAdmin validates that the request carries an admin authorization
func AuthAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, []string{"admin"}, "authorization.admin")
	}
}

// AuthBackOffice validates that the request carries any back-office role.
// The matched role is stored in locals so handlers can thread it explicitly
// into ownership resolution; nothing below the middleware reads the session.
func AuthBackOffice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, []string{"admin", "franchise", "relationship_manager"}, "authorization.backoffice")
	}
}

// authorize performs the authorization check against the bearer token
func authorize(c *fiber.Ctx, roles []string, errorType string) error {
	token := bearerToken(c)
	if token == "" {
		return &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Authorization bearer token not found",
			Type:    errorType,
		}
	}

	data, err := services.ValidateToken(token, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid token: %v", err),
			Type:    errorType,
		}
	}

	claims, _ := data["claims"].(map[string]interface{})
	c.Locals("claims", claims)
	c.Locals("actorRole", actorRole(claims, roles))

	return c.Next()
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// actorRole picks the first allowed role present in the token claims.
func actorRole(claims map[string]interface{}, allowed []string) ownership.Role {
	var granted []string
	switch v := claims["roles"].(type) {
	case []interface{}:
		for _, r := range v {
			if s, ok := r.(string); ok {
				granted = append(granted, s)
			}
		}
	case []string:
		granted = v
	case string:
		granted = strings.Split(v, ",")
	}

	for _, want := range allowed {
		for _, have := range granted {
			if strings.TrimSpace(have) == want {
				return ownership.Role(want)
			}
		}
	}
	return ""
}

// ActorRole reads the role stored by authorize; empty when unauthenticated.
func ActorRole(c *fiber.Ctx) ownership.Role {
	if r, ok := c.Locals("actorRole").(ownership.Role); ok {
		return r
	}
	return ""
}
