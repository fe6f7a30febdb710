package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	pkgerrors "user-management-api/pkg/errors"
	"user-management-api/pkg/logger"
)

// Recovery is the outermost pipeline stage. It turns panics and errors that
// handlers recorded with c.Error into the uniform 500 envelope, provided no
// response has been written yet.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.WithContext(c.Request.Context(), log).Error("panic recovered",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			writeUnexpected(c, panicMessage(rec))
		}()

		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		logger.WithContext(c.Request.Context(), log).Error("unhandled request error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(last.Err),
		)
		writeUnexpected(c, last.Err.Error())
	}
}

func writeUnexpected(c *gin.Context, detail string) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.Writer.Header().Del("Location")
	c.AbortWithStatusJSON(http.StatusInternalServerError, pkgerrors.NewUnexpectedErrorResponse(detail))
}

func panicMessage(rec any) string {
	switch v := rec.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
