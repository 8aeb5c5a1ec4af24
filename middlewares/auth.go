// file: middlewares/auth.go
package middlewares

import (
	"net/http"
	"strings"

	"RunClub/models"
	"RunClub/utils"
	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware 验证管理员是否登录
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(c, 4001, "请求头中 Authorization 为空")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, 4002, "Authorization 格式有误")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, 4003, "无效的 Token")
			c.Abort()
			return
		}
		c.Set("admin_id", claims.AdminID)
		c.Set("admin_role", claims.Role)
		c.Next()
	}
}

// RoleAuthMiddleware 验证管理员角色权限
func RoleAuthMiddleware(requiredRoles ...models.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("admin_role")
		if !exists {
			utils.Error(c, 5001, "无法获取管理员角色信息")
			c.Abort()
			return
		}

		role := roleAny.(models.AdminRole)

		hasPermission := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				hasPermission = true
				break
			}
		}

		// root_admin 拥有所有权限
		if role == models.RoleRootAdmin {
			hasPermission = true
		}

		if !hasPermission {
			c.JSON(http.StatusForbidden, gin.H{"code": 4003, "msg": "权限不足"})
			c.Abort()
			return
		}
		c.Next()
	}
}
