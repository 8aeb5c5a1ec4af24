// file: models/contact_inquiry.go
package models

import (
	"time"
)

// 自定义咨询状态类型
type InquiryStatus string

const (
	InquiryStatusOpen     InquiryStatus = "open"
	InquiryStatusResolved InquiryStatus = "resolved"
)

// ContactInquiry 对应 runclub_contact_inquiry 表
type ContactInquiry struct {
	ID        uint          `gorm:"primarykey" json:"id,omitempty"`
	Name      string        `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     string        `gorm:"size:100;not null" json:"email" binding:"required,email"`
	Subject   string        `gorm:"size:200" json:"subject"`
	Message   string        `gorm:"type:text;not null" json:"message" binding:"required"`
	Status    InquiryStatus `gorm:"type:enum('open','resolved');default:'open';not null" json:"status,omitempty"`
	CreatedAt time.Time     `json:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at,omitempty"`
}

func (ContactInquiry) TableName() string {
	return "runclub_contact_inquiry"
}
