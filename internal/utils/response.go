// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, gin.H{
		"code": http.StatusOK,
		"data": data,
	})
}

func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}
