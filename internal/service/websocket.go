package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"miniboard/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 256
)

// Event 是推送給瀏覽器的訊息
type Event struct {
	Type string          `json:"type"`
	Data *models.Message `json:"data"`
}

// Client 代表一個 WebSocket 客戶端連接
type Client struct {
	Conn     *websocket.Conn // WebSocket 連接
	Login    models.Login    // 連線的登入用戶
	SendChan chan []byte     // 消息發送通道，用於異步傳送消息
}

// Hub 管理所有看板的 WebSocket 連接，新留言會廣播給每一個連線
type Hub struct {
	clients    map[*Client]bool
	clientsMux sync.RWMutex // 用於保護 clients map 的讀寫鎖
	log        *logrus.Logger
}

// NewHub 創建並初始化新的 Hub
func NewHub(log *logrus.Logger) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{
		clients: make(map[*Client]bool),
		log:     log,
	}
}

// HandleConnection 處理新的 WebSocket 連接，直到連線中斷才返回
func (h *Hub) HandleConnection(conn *websocket.Conn, login models.Login) {
	client := &Client{
		Conn:     conn,
		Login:    login,
		SendChan: make(chan []byte, sendBufferSize),
	}

	h.addClient(client)

	// 確保連接關閉時清理資源
	defer func() {
		h.removeClient(client)
		conn.Close()
	}()

	go h.writePump(client)
	h.readPump(client)
}

// readPump 只處理 pong 與關閉，看板不接受從 WebSocket 發文
func (h *Hub) readPump(client *Client) {
	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.WithError(err).WithField("user_id", client.Login.ID).Warn("websocket unexpected close")
			}
			return
		}
	}
}

// writePump 處理向客戶端發送消息的邏輯
// 寫入失敗時關閉連線，讓 readPump 立即結束並移除客戶端
func (h *Hub) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// BroadcastMessage 將新留言推送給所有連線
func (h *Hub) BroadcastMessage(message *models.Message) {
	payload, err := json.Marshal(Event{Type: "message", Data: message})
	if err != nil {
		h.log.WithError(err).Error("message encoding error")
		return
	}

	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()

	for client := range h.clients {
		select {
		case client.SendChan <- payload:
		default:
			// 發送隊列已滿，關閉連線後由 readPump 結束並移除
			client.Conn.Close()
		}
	}
}

// ClientCount 回傳目前的連線數
func (h *Hub) ClientCount() int {
	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()

	return len(h.clients)
}

func (h *Hub) addClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	h.clients[client] = true
	h.log.WithField("user_id", client.Login.ID).Debug("websocket client joined")
}

// removeClient 在鎖內移除並關閉發送通道，避免廣播寫入已關閉的通道
func (h *Hub) removeClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.SendChan)
	}
}
