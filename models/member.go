// file: models/member.go
package models

import (
	"time"
)

// Member 对应 runclub_member 表，俱乐部成员介绍（公开页面展示用）
type Member struct {
	ID        uint      `gorm:"primarykey" json:"id,omitempty"`
	FullName  string    `gorm:"size:100;not null" json:"full_name" binding:"required"`
	Role      string    `gorm:"size:100" json:"role"`
	PhotoPath string    `gorm:"size:255" json:"photo_path"`
	Bio       string    `gorm:"type:text" json:"bio"`
	SortOrder uint      `gorm:"default:0" json:"sort_order"`
	IsActive  bool      `gorm:"default:1" json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func (Member) TableName() string {
	return "runclub_member"
}
