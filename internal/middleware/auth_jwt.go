package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type authClaims struct {
	Superuser bool `json:"superuser,omitempty"`
	jwt.RegisteredClaims
}

// RequireAuth parses the bearer token and stores uid and superuser flag in
// locals. Admin routes sit behind this; the public application and file
// endpoints do not.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims authClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		if claims.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing sub")
		}

		c.Locals("user_id", claims.Subject)
		c.Locals("superuser", claims.Superuser)
		return c.Next()
	}
}

// RequireSuperuser gates tenant-management routes. Must run after
// RequireAuth.
func RequireSuperuser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if su, _ := c.Locals("superuser").(bool); !su {
			return fiber.NewError(fiber.StatusForbidden, "superuser only")
		}
		return c.Next()
	}
}

// UIDFromLocals returns the authenticated uid, if any.
func UIDFromLocals(c *fiber.Ctx) (string, bool) {
	uid, ok := c.Locals("user_id").(string)
	return uid, ok && uid != ""
}
