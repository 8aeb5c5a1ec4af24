// file: controllers/member_controller.go
package controllers

import (
	"strconv"

	"RunClub/database"
	"RunClub/models"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// GetPublicMembers 公开成员列表（仅启用的成员，按排序字段）
func GetPublicMembers(c *gin.Context) {
	var members []models.Member
	if err := database.DB.Where("is_active = ?", true).Order("sort_order asc, id asc").Find(&members).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", members)
}

// --- 管理员接口 ---

// GetAdminMembers 管理端成员列表
func GetAdminMembers(c *gin.Context) {
	var members []models.Member
	if err := database.DB.Order("sort_order asc, id asc").Find(&members).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", members)
}

// CreateMember 新增成员，可附带照片上传
func CreateMember(c *gin.Context) {
	newMember := models.Member{
		FullName: c.PostForm("full_name"),
		Role:     c.PostForm("role"),
		Bio:      c.PostForm("bio"),
		IsActive: true,
	}
	if newMember.FullName == "" {
		utils.Error(c, 1001, "参数无效: full_name 不能为空")
		return
	}
	if v := c.PostForm("sort_order"); v != "" {
		if order, err := strconv.Atoi(v); err == nil {
			newMember.SortOrder = uint(order)
		}
	}

	if file, err := c.FormFile("photo"); err == nil {
		dst, err := saveUpload(c, file)
		if err != nil {
			utils.Error(c, 5000, "保存照片失败")
			return
		}
		newMember.PhotoPath = dst
	}

	if err := database.DB.Create(&newMember).Error; err != nil {
		utils.Error(c, 5000, "创建成员失败")
		return
	}
	utils.Success(c, "Member created successfully", gin.H{"id": newMember.ID})
}

// UpdateMember 更新成员信息
func UpdateMember(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var member models.Member
	if err := database.DB.First(&member, id).Error; err != nil {
		utils.Error(c, 4004, "成员不存在")
		return
	}

	var req struct {
		FullName  string `json:"full_name" binding:"required"`
		Role      string `json:"role"`
		Bio       string `json:"bio"`
		SortOrder *uint  `json:"sort_order"`
		IsActive  *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	updates := map[string]interface{}{
		"full_name": req.FullName,
		"role":      req.Role,
		"bio":       req.Bio,
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := database.DB.Model(&member).Updates(updates).Error; err != nil {
		utils.Error(c, 5000, "更新成员失败")
		return
	}
	utils.Success(c, "Member updated successfully", nil)
}

// DeleteMember 删除成员
func DeleteMember(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := database.DB.Delete(&models.Member{}, id).Error; err != nil {
		utils.Error(c, 5000, "删除成员失败")
		return
	}
	utils.Success(c, "Member deleted successfully", nil)
}
