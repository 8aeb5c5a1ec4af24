// file: controllers/notice_controller.go
package controllers

import (
	"strconv"

	"RunClub/database"
	"RunClub/models"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// GetPublicNotices 公开公告列表（仅已发布）
func GetPublicNotices(c *gin.Context) {
	var notices []models.Notice
	if err := database.DB.Where("is_publish = ?", true).Order("created_at desc").Find(&notices).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", notices)
}

// --- 管理员接口 ---

// GetAdminNotices 管理端公告列表（含未发布）
func GetAdminNotices(c *gin.Context) {
	var notices []models.Notice
	if err := database.DB.Order("created_at desc").Find(&notices).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", notices)
}

// CreateNotice 发布公告
func CreateNotice(c *gin.Context) {
	var req models.Notice
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.ID = 0

	if err := database.DB.Create(&req).Error; err != nil {
		utils.Error(c, 5000, "创建公告失败")
		return
	}
	utils.Success(c, "Notice created successfully", gin.H{"id": req.ID})
}

// UpdateNotice 修改公告
func UpdateNotice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var notice models.Notice
	if err := database.DB.First(&notice, id).Error; err != nil {
		utils.Error(c, 4004, "公告不存在")
		return
	}

	var req models.Notice
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	updates := map[string]interface{}{
		"title":      req.Title,
		"body":       req.Body,
		"is_publish": req.IsPublish,
	}
	if err := database.DB.Model(&notice).Updates(updates).Error; err != nil {
		utils.Error(c, 5000, "更新公告失败")
		return
	}
	utils.Success(c, "Notice updated successfully", nil)
}

// DeleteNotice 删除公告
func DeleteNotice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := database.DB.Delete(&models.Notice{}, id).Error; err != nil {
		utils.Error(c, 5000, "删除公告失败")
		return
	}
	utils.Success(c, "Notice deleted successfully", nil)
}
