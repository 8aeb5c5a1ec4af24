// file: controllers/resource_controller.go
package controllers

import (
	"fmt"
	"os"
	"strconv"

	"RunClub/database"
	"RunClub/models"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// GetResources 公开资料列表（赛事手册、路线图等）
func GetResources(c *gin.Context) {
	var resources []models.Resource
	if err := database.DB.Order("created_at desc").Find(&resources).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", resources)
}

// DownloadResource 下载资料文件
func DownloadResource(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var resource models.Resource
	if err := database.DB.First(&resource, id).Error; err != nil {
		utils.Error(c, 4004, "资料不存在")
		return
	}

	if _, err := os.Stat(resource.FilePath); err != nil {
		utils.Error(c, 5000, "文件已丢失")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, resource.FileName))
	c.File(resource.FilePath)
}

// --- 管理员接口 ---

// UploadResource 上传资料（multipart：file + title）
func UploadResource(c *gin.Context) {
	adminIDAny, ok := c.Get("admin_id")
	if !ok {
		utils.Error(c, 4001, "未登录")
		return
	}
	adminID := adminIDAny.(uint32)

	title := c.PostForm("title")
	if title == "" {
		utils.Error(c, 1001, "参数无效: title 不能为空")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, 1001, "获取文件失败")
		return
	}

	dst, err := saveUpload(c, file)
	if err != nil {
		utils.Error(c, 5000, "保存文件失败")
		return
	}
	sum, err := hashFile(dst)
	if err != nil {
		utils.Error(c, 5000, "计算哈希失败")
		return
	}

	newResource := models.Resource{
		Title:       title,
		FileName:    file.Filename,
		FilePath:    dst,
		ContentType: file.Header.Get("Content-Type"),
		FileSize:    uint64(file.Size),
		SHA256:      sum,
		CreatedBy:   adminID,
	}
	if err := database.DB.Create(&newResource).Error; err != nil {
		utils.Error(c, 5000, "创建资料记录失败")
		return
	}

	utils.Success(c, "Resource uploaded successfully", gin.H{"id": newResource.ID})
}

// DeleteResource 删除资料
func DeleteResource(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var resource models.Resource
	if err := database.DB.First(&resource, id).Error; err != nil {
		utils.Error(c, 4004, "资料不存在")
		return
	}

	if err := database.DB.Delete(&resource).Error; err != nil {
		utils.Error(c, 5000, "删除资料失败")
		return
	}
	_ = os.Remove(resource.FilePath)

	utils.Success(c, "Resource deleted successfully", nil)
}
