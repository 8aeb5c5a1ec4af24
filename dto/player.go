// file: dto/player.go
package dto

// ========== 请求 DTO ==========

// RegisterPlayerReq 公开报名表单（multipart，附照片和证件文件）
type RegisterPlayerReq struct {
	FullName        string `form:"full_name" binding:"required"`
	ContactNumber   string `form:"contact_number" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Gender          string `form:"gender" binding:"required,oneof=male female other"`
	BloodGroup      string `form:"blood_group" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DateOfBirth     string `form:"date_of_birth"` // 2006-01-02
	Address         string `form:"address"`
	EmergencyName   string `form:"emergency_name"`
	EmergencyNumber string `form:"emergency_number"`
	EventID         uint   `form:"event_id" binding:"required"`
	CategoryID      *uint  `form:"category_id"`
}

// RejectPlayerReq 审核驳回请求
type RejectPlayerReq struct {
	Reason string `json:"reason" binding:"required"`
}

// ========== 响应 DTO ==========

// PlayerItemResp 管理端选手列表项
type PlayerItemResp struct {
	ID            uint   `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	EventTitle    string `json:"event_title"`
	CategoryTitle string `json:"category_title"`
	Status        string `json:"status"`
	Bib           string `json:"bib"`
	RegisteredAt  string `json:"registered_at"`
}

// PlayerDetailResp 管理端选手详情
type PlayerDetailResp struct {
	ID              uint    `json:"id"`
	FullName        string  `json:"full_name"`
	ContactNumber   string  `json:"contact_number"`
	Email           string  `json:"email"`
	Gender          string  `json:"gender"`
	BloodGroup      string  `json:"blood_group,omitempty"`
	DateOfBirth     string  `json:"date_of_birth,omitempty"`
	Address         string  `json:"address,omitempty"`
	EmergencyName   string  `json:"emergency_name,omitempty"`
	EmergencyNumber string  `json:"emergency_number,omitempty"`
	EventID         uint    `json:"event_id"`
	EventTitle      string  `json:"event_title"`
	CategoryID      *uint   `json:"category_id"`
	CategoryTitle   string  `json:"category_title"`
	PhotoPath       string  `json:"photo_path,omitempty"`
	DocumentPath    string  `json:"document_path,omitempty"`
	Status          string  `json:"status"`
	BibNumber       *uint   `json:"bib_number"`
	Bib             string  `json:"bib"`
	VerifiedAt      *string `json:"verified_at"`
	RejectionReason *string `json:"rejection_reason"`
}
