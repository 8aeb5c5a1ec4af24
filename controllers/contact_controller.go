// file: controllers/contact_controller.go
package controllers

import (
	"strconv"

	"RunClub/database"
	"RunClub/models"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// SubmitInquiry 公开联系表单
func SubmitInquiry(c *gin.Context) {
	var req models.ContactInquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.ID = 0
	req.Status = models.InquiryStatusOpen

	if err := database.DB.Create(&req).Error; err != nil {
		utils.Error(c, 5000, "提交失败")
		return
	}
	utils.Success(c, "Inquiry submitted successfully. We will get back to you soon.", gin.H{"id": req.ID})
}

// --- 管理员接口 ---

// GetInquiries 咨询列表，支持按状态过滤
func GetInquiries(c *gin.Context) {
	query := database.DB.Model(&models.ContactInquiry{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var inquiries []models.ContactInquiry
	if err := query.Order("created_at desc").Find(&inquiries).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", inquiries)
}

// ResolveInquiry 标记咨询已处理
func ResolveInquiry(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var inquiry models.ContactInquiry
	if err := database.DB.First(&inquiry, id).Error; err != nil {
		utils.Error(c, 4004, "咨询不存在")
		return
	}

	if err := database.DB.Model(&inquiry).Update("status", models.InquiryStatusResolved).Error; err != nil {
		utils.Error(c, 5000, "更新状态失败")
		return
	}
	utils.Success(c, "Inquiry marked as resolved", nil)
}
