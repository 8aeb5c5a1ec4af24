// file: models/resource.go
package models

import (
	"time"
)

// Resource 对应 runclub_resource 表，存放可下载的公开资料
// （赛事手册、路线图、报名须知等）
type Resource struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	FilePath    string    `gorm:"size:255;not null" json:"-"`
	ContentType string    `gorm:"size:255" json:"content_type"`
	FileSize    uint64    `gorm:"default:0" json:"file_size"`
	SHA256      string    `gorm:"size:64" json:"-"`
	CreatedBy   uint32    `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Resource) TableName() string {
	return "runclub_resource"
}
