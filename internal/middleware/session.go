package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miniboard/internal/models"
	"miniboard/internal/utils"
)

// LoginKey 是登入身分存放在 gin.Context 中的鍵
const LoginKey = "login"

// SessionManager 以 cookie 中的 JWT 保存登入狀態
type SessionManager struct {
	tokens *utils.TokenManager
	cookie string
}

func NewSessionManager(tokens *utils.TokenManager, cookie string) *SessionManager {
	return &SessionManager{tokens: tokens, cookie: cookie}
}

// Middleware 解析 session cookie，有效時把 *models.Login 放入上下文
// 無效或過期的 cookie 視同未登入，不會中斷請求
func (s *SessionManager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(s.cookie)
		if err == nil && token != "" {
			if login, err := s.tokens.ParseToken(token); err == nil {
				c.Set(LoginKey, login)
			}
		}
		c.Next()
	}
}

// SignIn 簽發 token 並寫入 cookie
func (s *SessionManager) SignIn(c *gin.Context, login models.Login) error {
	token, err := s.tokens.GenerateToken(login)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookie, token, int(s.tokens.TTL().Seconds()), "/", "", false, true)
	c.Set(LoginKey, &login)
	return nil
}

// SignOut 清除 session cookie
func (s *SessionManager) SignOut(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookie, "", -1, "/", "", false, true)
}

// CurrentLogin 取得目前請求的登入身分，未登入時為 nil
func CurrentLogin(c *gin.Context) *models.Login {
	v, ok := c.Get(LoginKey)
	if !ok {
		return nil
	}
	login, _ := v.(*models.Login)
	return login
}
