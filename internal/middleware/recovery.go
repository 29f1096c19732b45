package middleware

import (
	"fmt"
	"net/http"

	"team_goal_tracker/internal/util"
	"team_goal_tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery 顶层异常处理：完整记录未预期的故障，
// 响应只携带追踪ID，不透出内部细节
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				traceID := util.TraceID(c)
				logger.Log.Error("Unhandled panic",
					zap.Any("panic", rec),
					zap.String("traceId", traceID),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stacktrace"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, util.ErrorResponse{
					Type:    "ServerError",
					Title:   "An unexpected error occurred",
					Status:  http.StatusInternalServerError,
					Detail:  fmt.Sprintf("%v", rec),
					TraceID: traceID,
				})
			}
		}()
		c.Next()
	}
}
