package middleware

import (
	"strings"

	"loja_virtual/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identity extracts the caller identity from the Authorization header and
// stores it in the gin context. The token is opaque: validation happens at
// the edge, this service only namespaces data by it. Requests without a
// token proceed as guest; handlers that need an authenticated caller check
// for the guest identity themselves.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := entities.GuestIdentity

		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if v := strings.TrimSpace(token); v != "" {
				identity = v
			}
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the caller identity stored by Identity, falling
// back to guest when the middleware did not run.
func IdentityFrom(c *gin.Context) string {
	if v, ok := c.Get(identityKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return entities.GuestIdentity
}

// IsAuthenticated reports whether the caller carries a non-guest identity.
func IsAuthenticated(c *gin.Context) bool {
	return IdentityFrom(c) != entities.GuestIdentity
}
