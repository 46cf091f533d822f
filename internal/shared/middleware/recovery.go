package middleware

import (
	"shop-admin-backend/internal/shared/render"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				render.ServerError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
