// file: controllers/auth_controller.go
package controllers

import (
	"strconv"

	"RunClub/database"
	"RunClub/models"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// AdminLogin 管理员登录，签发 JWT
func AdminLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	var admin models.AdminUser
	if err := database.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		utils.Error(c, 2001, "Invalid username or password")
		return
	}
	if !admin.CheckPassword(req.Password) {
		utils.Error(c, 2001, "Invalid username or password")
		return
	}
	if admin.Status != models.StatusActive {
		utils.Error(c, 2002, "Account is banned")
		return
	}

	token, err := utils.GenerateToken(admin)
	if err != nil {
		utils.Error(c, 5000, "生成 Token 失败")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"username":  admin.Username,
			"full_name": admin.FullName,
			"role":      admin.Role,
		},
	})
}

// CreateAdmin 新增管理员（仅 root_admin）
func CreateAdmin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"required,email"`
		FullName string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.AdminUser
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err == nil {
		utils.Error(c, 3001, "Username or email already exists")
		return
	}

	newAdmin := models.AdminUser{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     models.RoleAdmin,
	}
	if err := database.DB.Create(&newAdmin).Error; err != nil {
		utils.Error(c, 5000, "创建管理员失败")
		return
	}

	utils.Success(c, "Admin created successfully", gin.H{"id": newAdmin.ID})
}

// GetAdminList 管理员列表（仅 root_admin）
func GetAdminList(c *gin.Context) {
	var admins []models.AdminUser
	if err := database.DB.Order("id asc").Find(&admins).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", admins)
}

// UpdateAdminStatus 封禁/解封管理员（仅 root_admin）
func UpdateAdminStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status models.AdminStatus `json:"status" binding:"required,oneof=active banned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	var admin models.AdminUser
	if err := database.DB.First(&admin, id).Error; err != nil {
		utils.Error(c, 4004, "管理员不存在")
		return
	}
	if admin.Role == models.RoleRootAdmin {
		utils.Error(c, 4003, "Cannot change status of a root admin")
		return
	}

	if err := database.DB.Model(&admin).Update("status", req.Status).Error; err != nil {
		utils.Error(c, 5000, "更新状态失败")
		return
	}
	utils.Success(c, "Status updated successfully", nil)
}
