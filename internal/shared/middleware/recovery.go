package middleware

import (
	"net/http"

	"employee-service/internal/shared/response"

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

				errResp := response.NewErrorResponseWithCode(
					http.StatusInternalServerError,
					"SYS_001",
					"Internal server error",
				).WithRequestID(c.GetString("request_id"))

				response.WriteError(c, errResp)
				c.Abort()
			}
		}()

		c.Next()
	}
}
