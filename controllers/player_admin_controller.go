// file: controllers/player_admin_controller.go
package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"RunClub/database"
	"RunClub/dto"
	"RunClub/mappers"
	"RunClub/models"
	"RunClub/services"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// GetPlayerList 管理端选手列表，支持按赛事/状态过滤和分页
func GetPlayerList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := database.DB.Model(&models.Player{})
	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("verification_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	var players []models.Player
	err := query.Preload("Event").Preload("Category").
		Order("id desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&players).Error
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"players":   mappers.MapPlayersToItemResps(players),
	})
}

// GetPlayerDetail 管理端选手详情
func GetPlayerDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var player models.Player
	if err := database.DB.Preload("Event").Preload("Category").First(&player, id).Error; err != nil {
		utils.Error(c, 4004, "选手不存在")
		return
	}
	utils.Success(c, "success", mappers.MapPlayerToDetailResp(player))
}

// VerifyPlayer 审核通过并分配号码布
func VerifyPlayer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	player, err := services.VerifyPlayer(database.DB, services.DefaultNotifier, uint(id))
	if err != nil {
		var exhausted *services.RangeExhaustedError
		switch {
		case errors.Is(err, services.ErrPlayerNotFound):
			utils.Error(c, 4004, "选手不存在")
		case errors.Is(err, services.ErrAlreadyVerified):
			utils.Error(c, 3005, "Player is already verified")
		case errors.Is(err, services.ErrCategoryNotFound):
			utils.Error(c, 4004, "组别不存在")
		case errors.As(err, &exhausted):
			utils.Error(c, 3006, exhausted.Error())
		default:
			utils.Error(c, 5000, "审核失败: "+err.Error())
		}
		return
	}

	msg := "Player verified successfully."
	if player.BibNumber != nil {
		msg = fmt.Sprintf("Player verified successfully. BIB #%s assigned.", utils.FormatBib(player.BibNumber))
	}
	utils.Success(c, msg, mappers.MapPlayerToDetailResp(*player))
}

// RejectPlayer 审核驳回
func RejectPlayer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req dto.RejectPlayerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: 驳回原因不能为空")
		return
	}

	player, err := services.RejectPlayer(database.DB, services.DefaultNotifier, uint(id), req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			utils.Error(c, 4004, "选手不存在")
			return
		}
		utils.Error(c, 5000, "驳回失败: "+err.Error())
		return
	}

	utils.Success(c, "Player rejected.", mappers.MapPlayerToDetailResp(*player))
}

// ExportVerifiedPlayers 导出某赛事已审核选手（含号码布）为 Excel
func ExportVerifiedPlayers(c *gin.Context) {
	eventID, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		utils.Error(c, 4004, "赛事不存在")
		return
	}

	var players []models.Player
	err := database.DB.Preload("Category").
		Where("event_id = ? AND verification_status = ?", eventID, models.VerificationVerified).
		Order("bib_number asc").
		Find(&players).Error
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Verified Players"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"BIB", "Full Name", "Category", "Gender", "Contact", "Email", "Verified At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, p := range players {
		categoryTitle := "N/A"
		if p.Category != nil {
			categoryTitle = p.Category.Title
		}
		verifiedAt := ""
		if p.VerifiedAt != nil {
			verifiedAt = p.VerifiedAt.Format("2006-01-02 15:04:05")
		}
		values := []interface{}{
			utils.FormatBib(p.BibNumber),
			p.FullName,
			categoryTitle,
			string(p.Gender),
			p.ContactNumber,
			p.Email,
			verifiedAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="players_event_%d.xlsx"`, event.ID))
	if err := f.Write(c.Writer); err != nil {
		utils.Error(c, 5000, "导出失败")
		return
	}
}
