// file: models/player.go
package models

import (
	"time"
)

// 自定义类型 VerificationStatus, Gender, BloodGroup
type VerificationStatus string
type Gender string
type BloodGroup string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"

	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"

	BloodAPos  BloodGroup = "A+"
	BloodANeg  BloodGroup = "A-"
	BloodBPos  BloodGroup = "B+"
	BloodBNeg  BloodGroup = "B-"
	BloodABPos BloodGroup = "AB+"
	BloodABNeg BloodGroup = "AB-"
	BloodOPos  BloodGroup = "O+"
	BloodONeg  BloodGroup = "O-"
)

// Player 对应 runclub_player 表。
// BibNumber / VerifiedAt / RejectionReason 只由审核流程写入，
// 报名时全部为 NULL，状态默认 pending。
type Player struct {
	ID                 uint               `gorm:"primarykey" json:"id"`
	FullName           string             `gorm:"size:100;not null" json:"full_name"`
	ContactNumber      string             `gorm:"size:20;not null" json:"contact_number"`
	Email              string             `gorm:"size:100;not null;index" json:"email"`
	Gender             Gender             `gorm:"size:10;not null" json:"gender"`
	BloodGroup         BloodGroup         `gorm:"size:3" json:"blood_group,omitempty"`
	DateOfBirth        *time.Time         `json:"date_of_birth,omitempty"`
	Address            string             `gorm:"size:255" json:"address,omitempty"`
	EmergencyName      string             `gorm:"size:100" json:"emergency_name,omitempty"`
	EmergencyNumber    string             `gorm:"size:20" json:"emergency_number,omitempty"`
	EventID            uint               `gorm:"not null;index" json:"event_id"`
	Event              *Event             `gorm:"foreignKey:EventID" json:"event,omitempty"`
	CategoryID         *uint              `gorm:"index" json:"category_id"`
	Category           *Category          `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PhotoPath          string             `gorm:"size:255" json:"photo_path,omitempty"`
	DocumentPath       string             `gorm:"size:255" json:"document_path,omitempty"`
	DocumentSHA256     string             `gorm:"size:64" json:"-"`
	VerificationStatus VerificationStatus `gorm:"size:10;not null;default:'pending';index" json:"verification_status"`
	BibNumber          *uint              `json:"bib_number"`
	VerifiedAt         *time.Time         `json:"verified_at"`
	RejectionReason    *string            `gorm:"size:255" json:"rejection_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (Player) TableName() string {
	return "runclub_player"
}
