package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"miniboard/internal/models"
	"miniboard/internal/service"
)

// 未設定 CheckOrigin 時只接受同源連線
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WebSocketHandler 處理看板的即時更新連線
type WebSocketHandler struct {
	hub *service.Hub
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(hub *service.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleWebSocket 升級連線並加入 hub，直到連線結束
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context, login *models.Login) {
	if login == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
			Error: true,
			Data:  ErrorData{Message: "login required"},
		})
		return
	}

	// Upgrade 失敗時已自行回應錯誤
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.hub.HandleConnection(conn, *login)
}
