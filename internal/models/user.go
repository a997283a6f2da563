package models

import (
	"gorm.io/gorm"
)

// User 表示留言板的用戶
type User struct {
	gorm.Model        // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Name       string `gorm:"uniqueIndex;not null" json:"name"` // 用戶名，必須唯一
	Password   string `gorm:"not null" json:"-"`                // bcrypt 雜湊，json 序列化時會被忽略
	Comment    string `json:"comment"`
}

// Login 表示目前請求的登入身分，nil 代表未登入
type Login struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
