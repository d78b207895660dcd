package middleware

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1/response"
)

// Recovery turns a panic into the 500 JSON body instead of an empty response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(ctx *gin.Context, recovered any) {
		zap.L().Error("panic recovered", zap.Any("panic", recovered), zap.Stack("stack"))
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%v", recovered)))
	})
}
