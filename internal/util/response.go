package util

import (
	"net/http"

	"team_goal_tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse 顶层错误响应，除追踪ID外不向调用方透出内部细节
type ErrorResponse struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Status  int    `json:"status"`
	Detail  string `json:"detail,omitempty"`
	TraceID string `json:"traceId"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// TraceID 取出当前请求的追踪ID
func TraceID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// LogInternalError 记录存储层等未分类故障并返回通用失败响应，
// 仅携带追踪ID，错误细节不出边界
func LogInternalError(c *gin.Context, err error) {
	traceID := TraceID(c)
	logger.Log.Error("Internal server error",
		zap.Error(err),
		zap.String("traceId", traceID),
		zap.String("path", c.FullPath()),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Type:    "ServerError",
		Title:   "An unexpected error occurred",
		Status:  http.StatusInternalServerError,
		TraceID: traceID,
	})
}
