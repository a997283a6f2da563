package models

import (
	"time"
)

// Message 表示一則留言，透過 user_id 屬於一個用戶
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pagination 分頁資訊
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	RowCount  int64 `json:"row_count"`
	PageCount int   `json:"page_count"`
}

// NewPagination 依總筆數計算頁數
func NewPagination(page, pageSize int, rowCount int64) Pagination {
	pageCount := 0
	if pageSize > 0 {
		pageCount = int((rowCount + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		RowCount:  rowCount,
		PageCount: pageCount,
	}
}

// HasPrev 是否有上一頁
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext 是否有下一頁
func (p Pagination) HasNext() bool {
	return p.Page < p.PageCount
}
