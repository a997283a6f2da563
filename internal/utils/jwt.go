package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"miniboard/internal/models"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	jwt.StandardClaims
}

// TokenManager 簽發與驗證登入 session 使用的 JWT
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL 回傳 token 的有效期間
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// GenerateToken 為登入用戶產生一個新的 JWT token
func (m *TokenManager) GenerateToken(login models.Login) (string, error) {
	nowTime := m.now()
	expireTime := nowTime.Add(m.ttl)

	claims := Claims{
		UserID: login.ID,
		Name:   login.Name,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expireTime.Unix(),
			IssuedAt:  nowTime.Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(m.secret)
}

// ParseToken 解析和驗證 JWT token，並轉成登入身分
func (m *TokenManager) ParseToken(token string) (*models.Login, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := tokenClaims.Claims.(*Claims)
	if !ok || !tokenClaims.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == 0 {
		return nil, errors.New("token has no user")
	}

	return &models.Login{ID: claims.UserID, Name: claims.Name}, nil
}
