// file: utils/code_generator.go
package utils

import (
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateRegistrationCode 生成指定长度的随机报名编号
func GenerateRegistrationCode(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(charset[seededRand.Intn(len(charset))])
	}
	return sb.String()
}

// GenerateUploadName 为上传文件生成随机文件名，保留原扩展名，
// 避免用户文件名冲突或包含路径字符
func GenerateUploadName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return strings.Replace(uuid.New().String(), "-", "", -1) + ext
}
