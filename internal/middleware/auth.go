package middleware

import (
	"net/http"
	"strings"

	"github.com/ArturFariaVieira/drivent-s4/internal/pkg/jwt"
	"github.com/wb-go/wbf/ginext"
)

// UserIDKey is the context key under which Auth stores the authenticated
// user's id.
const UserIDKey = "user_id"

func Auth(tokens *jwt.Service) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
