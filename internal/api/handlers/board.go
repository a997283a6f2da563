package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"miniboard/internal/middleware"
	"miniboard/internal/models"
	"miniboard/internal/service"
)

const loginPath = "/users"

// BoardHandler 處理留言列表與發文
type BoardHandler struct {
	boardService *service.BoardService
	metrics      *middleware.Metrics
	title        string
}

// NewBoardHandler 創建一個新的 BoardHandler 實例
func NewBoardHandler(boardService *service.BoardService, metrics *middleware.Metrics, title string) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		metrics:      metrics,
		title:        title,
	}
}

// Index 未登入時導向登入頁，否則導向第一頁
func (h *BoardHandler) Index(c *gin.Context, login *models.Login) {
	if login == nil {
		c.Redirect(http.StatusFound, loginPath)
		return
	}
	c.Redirect(http.StatusFound, "/1")
}

// ListPage 顯示第 :page 頁的留言
func (h *BoardHandler) ListPage(c *gin.Context, login *models.Login) {
	if login == nil {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	page, err := h.boardService.ListPage(c.Request.Context(), parsePage(c.Param("page")))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"title":      h.title,
		"login":      login,
		"collection": page.Messages,
		"pagination": page.Pagination,
	})
}

// PostMessage 以登入用戶身分新增留言後導回首頁
func (h *BoardHandler) PostMessage(c *gin.Context, login *models.Login) {
	if login == nil {
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	var input struct {
		Msg string `form:"msg"`
	}
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	_, err := h.boardService.PostMessage(c.Request.Context(), *login, input.Msg)
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		respondError(c, http.StatusBadRequest, err)
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	if h.metrics != nil {
		h.metrics.MessagePosted()
	}
	c.Redirect(http.StatusFound, "/")
}

// parsePage 將路徑參數轉成頁碼，無法解析或小於 1 時為 1
func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
