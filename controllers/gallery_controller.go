// file: controllers/gallery_controller.go
package controllers

import (
	"os"
	"strconv"

	"RunClub/database"
	"RunClub/models"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// GetGallery 公开相册列表
func GetGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := database.DB.Order("sort_order asc, id desc").Find(&images).Error; err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	utils.Success(c, "success", images)
}

// --- 管理员接口 ---

// UploadGalleryImage 上传相册图片（multipart：file + caption + 可选 event_id/sort_order）
func UploadGalleryImage(c *gin.Context) {
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

	newImage := models.GalleryImage{
		Caption:  c.PostForm("caption"),
		FilePath: dst,
	}
	if v := c.PostForm("event_id"); v != "" {
		if eventID, err := strconv.Atoi(v); err == nil {
			id := uint(eventID)
			newImage.EventID = &id
		}
	}
	if v := c.PostForm("sort_order"); v != "" {
		if order, err := strconv.Atoi(v); err == nil {
			newImage.SortOrder = uint(order)
		}
	}

	if err := database.DB.Create(&newImage).Error; err != nil {
		utils.Error(c, 5000, "创建相册记录失败")
		return
	}
	utils.Success(c, "Image uploaded successfully", gin.H{"id": newImage.ID})
}

// DeleteGalleryImage 删除相册图片（连同磁盘文件）
func DeleteGalleryImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var image models.GalleryImage
	if err := database.DB.First(&image, id).Error; err != nil {
		utils.Error(c, 4004, "图片不存在")
		return
	}

	if err := database.DB.Delete(&image).Error; err != nil {
		utils.Error(c, 5000, "删除图片失败")
		return
	}
	// 磁盘文件删除失败不影响结果，只是留下孤儿文件
	_ = os.Remove(image.FilePath)

	utils.Success(c, "Image deleted successfully", nil)
}
