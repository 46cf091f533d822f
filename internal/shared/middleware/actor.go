package middleware

import (
	"shop-admin-backend/internal/domains/user"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// actorKey is the gin context key the resolved actor is stored under.
const actorKey = "actor"

// ActorResolver loads the fixed demo actor before any handler runs and
// attaches it to the request context. One persistence read per request,
// unconditionally, regardless of route.
//
// Lookup failure is logged and the request proceeds without an actor
// (fail-open); handlers that need one must check ActorFromContext and
// answer explicitly instead of letting a nil reference flow downstream.
func ActorResolver(users user.Service, actorID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := users.GetUser(c.Request.Context(), actorID)
		if err != nil {
			log.Error().
				Str("request_id", c.GetString("request_id")).
				Str("actor_id", actorID).
				Err(err).
				Msg("Actor lookup failed")

			c.Next()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the actor attached by ActorResolver. The ok
// result is false when the lookup failed for this request.
func ActorFromContext(c *gin.Context) (*user.User, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return nil, false
	}

	actor, ok := value.(*user.User)
	if !ok || actor == nil {
		return nil, false
	}
	return actor, true
}
