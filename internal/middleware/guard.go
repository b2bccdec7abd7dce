package middleware

import (
	"context"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/abdul977/lodgebooker/internal/domain"
)

type profileSource interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// Guard resolves the caller's capability on every request. The role is
// never trusted from the token: it is read fresh from the profile store,
// so a demotion or account disable takes effect immediately. Any lookup
// failure denies access.
type Guard struct {
	profiles profileSource
	log      logger.Logger
}

func NewGuard(profiles profileSource, log logger.Logger) *Guard {
	return &Guard{profiles: profiles, log: log}
}

// RequireUser admits any active account.
func (g *Guard) RequireUser() ginext.HandlerFunc {
	return g.require(func(c domain.Capability) bool {
		return c != domain.CapabilityGuest
	})
}

// RequireStaff admits accounts that may verify payments and manage
// users.
func (g *Guard) RequireStaff() ginext.HandlerFunc {
	return g.require(domain.Capability.CanVerifyPayments)
}

func (g *Guard) require(allowed func(domain.Capability) bool) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		profile, err := g.profiles.GetByID(c.Request.Context(), UserID(c))
		if err != nil {
			g.log.Error("capability lookup failed",
				logger.String("user_id", UserID(c)),
				logger.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "access denied"},
			)
			return
		}

		if !allowed(domain.ResolveCapability(profile)) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "access denied"},
			)
			return
		}

		c.Next()
	}
}
