package handlers

import (
	"github.com/gin-gonic/gin"

	"miniboard/internal/middleware"
	"miniboard/internal/models"
)

// LoginHandlerFunc 是明確接收登入身分的處理函式，login 為 nil 代表未登入
type LoginHandlerFunc func(c *gin.Context, login *models.Login)

// WithLogin 從上下文取出登入身分後交給 h
func WithLogin(h LoginHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(c, middleware.CurrentLogin(c))
	}
}

// ErrorResponse 是所有 JSON 錯誤回應的格式
type ErrorResponse struct {
	Error bool      `json:"error"`
	Data  ErrorData `json:"data"`
}

type ErrorData struct {
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: true,
		Data:  ErrorData{Message: err.Error()},
	})
}
