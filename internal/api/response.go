package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/word-game/internal/errors"
	"github.com/wfunc/word-game/internal/logger"
	"go.uber.org/zap"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code    apperrors.ErrorCode `json:"code"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
}

// SuccessResponse 成功响应
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// respondError 将错误转换为HTTP响应
//
// AppError按错误码映射HTTP状态；其他错误按未知错误处理。
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.LogError(err, "未处理错误",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		appErr = apperrors.Wrap(err, apperrors.ErrUnknown)
	}
	c.JSON(appErr.HTTPStatus(), ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}
