package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

// userIDKey is where the session middleware stores the authenticated
// profile id for downstream handlers.
const userIDKey = "user_id"

type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Session authenticates the request from its bearer token. The token
// identifies the profile only; what the profile may do is resolved per
// request by the capability guard.
func Session(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token"},
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated profile id set by Session, or empty
// when the request carries no session.
func UserID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}
