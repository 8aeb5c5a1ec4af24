// file: models/gallery_image.go
package models

import (
	"time"
)

// GalleryImage 对应 runclub_gallery 表
type GalleryImage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Caption   string    `gorm:"size:200" json:"caption"`
	FilePath  string    `gorm:"size:255;not null" json:"file_path"`
	EventID   *uint     `json:"event_id,omitempty"`
	SortOrder uint      `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "runclub_gallery"
}
