// Package middleware 提供 HTTP 中间件
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"genai-relay-api/internal/interfaces/http/dto"
	"genai-relay-api/pkg/errors"
	"genai-relay-api/pkg/logger"
)

// Recovery Panic 恢复中间件，任何 panic 都不会终止进程
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					fmt.Errorf("%v", rec),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				dto.AbortWithError(c, http.StatusInternalServerError, errors.ErrInternalError.Message)
			}
		}()

		c.Next()
	}
}
