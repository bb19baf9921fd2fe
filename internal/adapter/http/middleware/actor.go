package middleware

import (
	"net/http"
	"strings"

	"nova_freight/pkg"

	"github.com/gin-gonic/gin"
)

// Identity headers minted by the platform gateway after it resolves the
// caller's session. The lifecycle service trusts them as an opaque
// authenticated identity; it performs no token validation of its own.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"

	RoleAdmin = "admin"

	actorContextKey = "actor"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)

// Actor is the authenticated caller attached to the request context.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RequireActor rejects requests that arrive without a resolved identity.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderActorID))
		if id == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(actorContextKey, Actor{
			ID:   id,
			Role: strings.TrimSpace(c.GetHeader(HeaderActorRole)),
		})
		c.Next()
	}
}

// ActorFrom returns the identity attached by RequireActor.
func ActorFrom(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}
