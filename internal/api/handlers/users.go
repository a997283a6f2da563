package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"miniboard/internal/middleware"
	"miniboard/internal/models"
	"miniboard/internal/service"
)

// UserHandler 處理登入、登出與註冊
type UserHandler struct {
	userService *service.UserService
	sessions    *middleware.SessionManager
	title       string
}

// NewUserHandler 創建一個新的 UserHandler 實例
func NewUserHandler(userService *service.UserService, sessions *middleware.SessionManager, title string) *UserHandler {
	return &UserHandler{
		userService: userService,
		sessions:    sessions,
		title:       title,
	}
}

// LoginInput 定義登入表單
type LoginInput struct {
	Name     string `form:"name"`
	Password string `form:"password"`
}

// RegisterInput 定義註冊表單
type RegisterInput struct {
	Name     string `form:"name"`
	Password string `form:"password"`
	Comment  string `form:"comment"`
}

// LoginPage 顯示登入表單與用戶列表
func (h *UserHandler) LoginPage(c *gin.Context, login *models.Login) {
	h.renderLogin(c, http.StatusOK, login, "", "")
}

// Login 處理用戶登入
func (h *UserHandler) Login(c *gin.Context, login *models.Login) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	identity, err := h.userService.Authenticate(c.Request.Context(), input.Name, input.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.renderLogin(c, http.StatusUnauthorized, login, input.Name, "name or password is incorrect")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := h.sessions.SignIn(c, *identity); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout 清除 session 後回到登入頁
func (h *UserHandler) Logout(c *gin.Context, login *models.Login) {
	h.sessions.SignOut(c)
	c.Redirect(http.StatusFound, loginPath)
}

// RegisterPage 顯示註冊表單
func (h *UserHandler) RegisterPage(c *gin.Context, login *models.Login) {
	c.HTML(http.StatusOK, "add", gin.H{
		"title": h.title,
		"login": login,
	})
}

// Register 處理用戶註冊
func (h *UserHandler) Register(c *gin.Context, login *models.Login) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	_, err := h.userService.Register(c.Request.Context(), input.Name, input.Password, input.Comment)
	status := http.StatusOK
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, loginPath)
		return
	case errors.Is(err, service.ErrUserExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusBadRequest
		err = errors.New("name and password are required")
	default:
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(status, "add", gin.H{
		"title":   h.title,
		"login":   login,
		"name":    input.Name,
		"comment": input.Comment,
		"error":   err.Error(),
	})
}

func (h *UserHandler) renderLogin(c *gin.Context, status int, login *models.Login, name, message string) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	data := gin.H{
		"title": h.title,
		"login": login,
		"users": users,
		"name":  name,
	}
	if message != "" {
		data["error"] = message
	}
	c.HTML(status, "login", data)
}
