// file: controllers/player_controller.go
package controllers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"RunClub/config"
	"RunClub/database"
	"RunClub/dto"
	"RunClub/models"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// saveUpload 保存上传文件到上传目录（uuid 文件名），返回存储路径
func saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(config.C.UploadDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(config.C.UploadDir, utils.GenerateUploadName(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// hashFile 计算已保存文件的 SHA256
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// RegisterPlayer 公开报名接口（multipart：表单字段 + photo + document）。
// 报名成功后状态为 pending，等待管理员审核发号
func RegisterPlayer(c *gin.Context) {
	var req dto.RegisterPlayerReq
	if err := c.ShouldBind(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var event models.Event
	if err := database.DB.Where("is_publish = ? AND is_active = ?", true, true).First(&event, req.EventID).Error; err != nil {
		utils.Error(c, 4004, "赛事不存在或未开放报名")
		return
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := database.DB.Where("event_id = ? AND is_active = ?", event.ID, true).First(&category, *req.CategoryID).Error; err != nil {
			utils.Error(c, 4004, "组别不存在或未启用")
			return
		}
	}

	// 同一赛事同一邮箱只允许报名一次
	var count int64
	if err := database.DB.Model(&models.Player{}).
		Where("event_id = ? AND email = ?", event.ID, req.Email).
		Count(&count).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if count > 0 {
		utils.Error(c, 3001, "This email is already registered for the event")
		return
	}

	newPlayer := models.Player{
		FullName:           req.FullName,
		ContactNumber:      req.ContactNumber,
		Email:              req.Email,
		Gender:             models.Gender(req.Gender),
		BloodGroup:         models.BloodGroup(req.BloodGroup),
		Address:            req.Address,
		EmergencyName:      req.EmergencyName,
		EmergencyNumber:    req.EmergencyNumber,
		EventID:            event.ID,
		CategoryID:         req.CategoryID,
		VerificationStatus: models.VerificationPending,
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			utils.Error(c, 1001, "出生日期格式有误，应为 YYYY-MM-DD")
			return
		}
		newPlayer.DateOfBirth = &dob
	}

	if file, err := c.FormFile("photo"); err == nil {
		dst, err := saveUpload(c, file)
		if err != nil {
			utils.Error(c, 5000, "保存照片失败")
			return
		}
		newPlayer.PhotoPath = dst
	}

	if file, err := c.FormFile("document"); err == nil {
		dst, err := saveUpload(c, file)
		if err != nil {
			utils.Error(c, 5000, "保存证件文件失败")
			return
		}
		sum, err := hashFile(dst)
		if err != nil {
			utils.Error(c, 5000, "计算哈希失败")
			return
		}
		newPlayer.DocumentPath = dst
		newPlayer.DocumentSHA256 = sum
	}

	if err := database.DB.Create(&newPlayer).Error; err != nil {
		utils.Error(c, 5000, "创建报名记录失败")
		return
	}

	utils.Success(c, "Registration submitted successfully. Pending verification.", gin.H{
		"player_id": newPlayer.ID,
		"status":    newPlayer.VerificationStatus,
	})
}
