package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

type TokenParser interface {
	ParseToken(token string) (domain.Identity, error)
}

// Authenticate extracts the Bearer token, validates it and stores the
// resulting identity in the request context for the layers below.
func Authenticate(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		auth := c.Request.Header.Get("Authorization")
		scheme, token, found := strings.Cut(auth, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing or malformed token"},
			)
			return
		}

		ident, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token"},
			)
			return
		}

		ctx := domain.WithIdentity(c.Request.Context(), ident)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in the list.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ident, ok := domain.IdentityFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		for _, role := range roles {
			if ident.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			ginext.H{"error": "access denied"},
		)
	}
}
