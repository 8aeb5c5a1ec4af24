// file: models/event.go
package models

import (
	"time"
)

// Event 对应 runclub_event 表 (已添加 JSON 绑定标签)
type Event struct {
	ID          uint       `gorm:"primarykey" json:"id,omitempty"`
	Title       string     `gorm:"size:200;not null" json:"title" binding:"required"`
	Description string     `gorm:"type:text" json:"description"`
	CoverImage  string     `gorm:"size:255" json:"cover_image"`
	Location    string     `gorm:"size:255" json:"location"`
	StartDate   time.Time  `gorm:"not null" json:"start_date" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	IsActive    bool       `gorm:"default:1" json:"is_active"`
	IsPublish   bool       `gorm:"default:0" json:"is_publish"`
	Categories  []Category `gorm:"foreignKey:EventID" json:"categories,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at,omitempty"`
}

func (Event) TableName() string {
	return "runclub_event"
}
