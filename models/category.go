// file: models/category.go
package models

import (
	"time"
)

// Category 对应 runclub_category 表。
// BibStart/BibEnd 为该组别预留的号码布区间（闭区间），
// 两者都为 NULL 表示该组别不分配号码布。
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	Event     *Event    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	IsActive  bool      `gorm:"default:1" json:"is_active"`
	BibStart  *uint     `json:"bib_start"`
	BibEnd    *uint     `json:"bib_end"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "runclub_category"
}

// HasBibRange 判断组别是否配置了号码布区间
func (c *Category) HasBibRange() bool {
	return c.BibStart != nil && c.BibEnd != nil
}
