// file: models/notice.go
package models

import (
	"time"
)

// Notice 对应 runclub_notice 表 (已添加 JSON 绑定标签)
type Notice struct {
	ID        uint      `gorm:"primarykey" json:"id,omitempty"`
	Title     string    `gorm:"size:200;not null" json:"title" binding:"required"`
	Body      string    `gorm:"type:text;not null" json:"body" binding:"required"`
	IsPublish bool      `gorm:"default:0" json:"is_publish"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (Notice) TableName() string {
	return "runclub_notice"
}
