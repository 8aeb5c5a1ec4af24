// file: models/admin_user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 自定义类型 AdminRole, AdminStatus
type AdminRole string
type AdminStatus string

const (
	RoleAdmin     AdminRole   = "admin"
	RoleRootAdmin AdminRole   = "root_admin"
	StatusActive  AdminStatus = "active"
	StatusBanned  AdminStatus = "banned"
)

type AdminUser struct {
	ID        uint32      `gorm:"primarykey" json:"id"`
	Username  string      `gorm:"size:50;unique;not null" json:"username"`
	Password  string      `gorm:"size:255;not null" json:"-"`
	Email     string      `gorm:"size:100;unique;not null" json:"email"`
	FullName  string      `gorm:"size:100" json:"full_name,omitempty"`
	Role      AdminRole   `gorm:"type:enum('admin','root_admin');not null;default:'admin'" json:"role"`
	Status    AdminStatus `gorm:"type:enum('active','banned');not null;default:'active'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "runclub_admin_user"
}

// BeforeSave GORM Hook，在保存管理员前自动哈希密码
func (u *AdminUser) BeforeSave(tx *gorm.DB) (err error) {
	// 新建 (ID=0) 或密码字段变更时执行哈希
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

// CheckPassword 校验密码是否正确
func (u *AdminUser) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
