// file: controllers/event_controller.go
package controllers

import (
	"strconv"

	"RunClub/database"
	"RunClub/models"
	"RunClub/services"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// GetPublicEvents 公开赛事列表（已发布且启用，走 Redis 缓存）
func GetPublicEvents(c *gin.Context) {
	events, err := services.GetPublicEvents(database.DB)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", events)
}

// GetPublicEventDetail 公开赛事详情（未发布的赛事对外不可见）
func GetPublicEventDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	err := database.DB.Where("is_publish = ? AND is_active = ?", true, true).
		Preload("Categories", "is_active = ?", true).
		First(&event, id).Error
	if err != nil {
		utils.Error(c, 4004, "赛事不存在")
		return
	}
	utils.Success(c, "success", event)
}

// --- 管理员接口 ---

// GetAdminEvents 管理端赛事列表（含未发布）
func GetAdminEvents(c *gin.Context) {
	var events []models.Event
	if err := database.DB.Preload("Categories").Order("start_date desc").Find(&events).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", events)
}

// CreateEvent 创建赛事
func CreateEvent(c *gin.Context) {
	var req models.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.ID = 0
	req.Categories = nil

	if err := database.DB.Create(&req).Error; err != nil {
		utils.Error(c, 5000, "创建赛事失败: "+err.Error())
		return
	}

	services.InvalidateEventCache()
	utils.Success(c, "Event created successfully", gin.H{"id": req.ID})
}

// UpdateEvent 更新赛事基本信息
func UpdateEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		utils.Error(c, 4004, "赛事不存在")
		return
	}

	var req models.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"cover_image": req.CoverImage,
		"location":    req.Location,
		"start_date":  req.StartDate,
	}
	if err := database.DB.Model(&event).Updates(updates).Error; err != nil {
		utils.Error(c, 5000, "更新赛事失败")
		return
	}

	services.InvalidateEventCache()
	utils.Success(c, "Event updated successfully", nil)
}

// UpdateEventStatus 发布/下线、启用/停用赛事
func UpdateEventStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		IsActive  *bool `json:"is_active"`
		IsPublish *bool `json:"is_publish"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || (req.IsActive == nil && req.IsPublish == nil) {
		utils.Error(c, 1001, "参数无效")
		return
	}

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		utils.Error(c, 4004, "赛事不存在")
		return
	}

	updates := map[string]interface{}{}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsPublish != nil {
		updates["is_publish"] = *req.IsPublish
	}
	if err := database.DB.Model(&event).Updates(updates).Error; err != nil {
		utils.Error(c, 5000, "更新状态失败")
		return
	}

	services.InvalidateEventCache()
	utils.Success(c, "Event status updated successfully", nil)
}

// DeleteEvent 删除赛事（已有报名记录的赛事不允许删除）
func DeleteEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var count int64
	if err := database.DB.Model(&models.Player{}).Where("event_id = ?", id).Count(&count).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if count > 0 {
		utils.Error(c, 3002, "Event has registrations and cannot be deleted")
		return
	}

	if err := database.DB.Where("event_id = ?", id).Delete(&models.Category{}).Error; err != nil {
		utils.Error(c, 5000, "删除组别失败")
		return
	}
	if err := database.DB.Delete(&models.Event{}, id).Error; err != nil {
		utils.Error(c, 5000, "删除赛事失败")
		return
	}

	services.InvalidateEventCache()
	utils.Success(c, "Event deleted successfully", nil)
}
