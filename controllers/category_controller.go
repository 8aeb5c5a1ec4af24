// file: controllers/category_controller.go
package controllers

import (
	"errors"
	"strconv"

	"RunClub/database"
	"RunClub/dto"
	"RunClub/models"
	"RunClub/services"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// GetEventCategories 某赛事的组别列表
func GetEventCategories(c *gin.Context) {
	eventID, _ := strconv.Atoi(c.Param("id"))

	var categories []models.Category
	if err := database.DB.Where("event_id = ?", eventID).Order("id asc").Find(&categories).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", categories)
}

// CreateCategory 为赛事创建组别，可选配置号码布区间
func CreateCategory(c *gin.Context) {
	eventID, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		utils.Error(c, 4004, "赛事不存在")
		return
	}

	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if err := services.ValidateBibRange(database.DB, 0, req.BibStart, req.BibEnd); err != nil {
		utils.Error(c, 3003, err.Error())
		return
	}

	newCategory := models.Category{
		EventID:  event.ID,
		Title:    req.Title,
		IsActive: true,
		BibStart: req.BibStart,
		BibEnd:   req.BibEnd,
	}
	if req.IsActive != nil {
		newCategory.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&newCategory).Error; err != nil {
		utils.Error(c, 5000, "创建组别失败")
		return
	}

	services.InvalidateEventCache()
	utils.Success(c, "Category created successfully", gin.H{"id": newCategory.ID})
}

// UpdateCategory 更新组别。号码布区间一旦发过号只能放宽，
// 收缩到已发号码之外会被拒绝
func UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		utils.Error(c, 4004, "组别不存在")
		return
	}

	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if err := services.ValidateBibRange(database.DB, category.ID, req.BibStart, req.BibEnd); err != nil {
		var shrinkErr *services.RangeShrinkError
		if errors.As(err, &shrinkErr) {
			utils.Error(c, 3004, err.Error())
			return
		}
		utils.Error(c, 3003, err.Error())
		return
	}

	updates := map[string]interface{}{
		"title":     req.Title,
		"bib_start": req.BibStart,
		"bib_end":   req.BibEnd,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := database.DB.Model(&category).Updates(updates).Error; err != nil {
		utils.Error(c, 5000, "更新组别失败")
		return
	}

	services.InvalidateEventCache()
	utils.Success(c, "Category updated successfully", nil)
}

// DeleteCategory 删除组别（已有报名记录的组别不允许删除）
func DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var count int64
	if err := database.DB.Model(&models.Player{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if count > 0 {
		utils.Error(c, 3002, "Category has registrations and cannot be deleted")
		return
	}

	if err := database.DB.Delete(&models.Category{}, id).Error; err != nil {
		utils.Error(c, 5000, "删除组别失败")
		return
	}

	services.InvalidateEventCache()
	utils.Success(c, "Category deleted successfully", nil)
}
