// file: routes/router.go
package routes

import (
	"RunClub/controllers"
	"RunClub/middlewares"
	"RunClub/models"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- 公开接口：赛事、公告、相册、资料、成员、联系表单、报名 ---
		eventsPublic := apiV1.Group("/events")
		{
			eventsPublic.GET("", controllers.GetPublicEvents)
			eventsPublic.GET("/:id", controllers.GetPublicEventDetail)
			eventsPublic.GET("/:id/categories", controllers.GetEventCategories)
		}
		apiV1.GET("/notices", controllers.GetPublicNotices)
		apiV1.GET("/gallery", controllers.GetGallery)
		apiV1.GET("/resources", controllers.GetResources)
		apiV1.GET("/resources/:id/download", controllers.DownloadResource)
		apiV1.GET("/members", controllers.GetPublicMembers)
		apiV1.POST("/contact", controllers.SubmitInquiry)
		apiV1.POST("/players/register", controllers.RegisterPlayer)

		// --- 管理员登录 ---
		apiV1.POST("/admin/login", controllers.AdminLogin)

		// --- 管理端接口 ---
		admin := apiV1.Group("/admin")
		admin.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			// 赛事与组别
			admin.GET("/events", controllers.GetAdminEvents)
			admin.POST("/events", controllers.CreateEvent)
			admin.PUT("/events/:id", controllers.UpdateEvent)
			admin.PUT("/events/:id/status", controllers.UpdateEventStatus)
			admin.DELETE("/events/:id", controllers.DeleteEvent)
			admin.POST("/events/:id/categories", controllers.CreateCategory)
			admin.PUT("/categories/:id", controllers.UpdateCategory)
			admin.DELETE("/categories/:id", controllers.DeleteCategory)

			// 选手审核与导出
			admin.GET("/players", controllers.GetPlayerList)
			admin.GET("/players/:id", controllers.GetPlayerDetail)
			admin.PUT("/players/:id/verify", controllers.VerifyPlayer)
			admin.PUT("/players/:id/reject", controllers.RejectPlayer)
			admin.GET("/events/:id/players/export", controllers.ExportVerifiedPlayers)

			// 公告
			admin.GET("/notices", controllers.GetAdminNotices)
			admin.POST("/notices", controllers.CreateNotice)
			admin.PUT("/notices/:id", controllers.UpdateNotice)
			admin.DELETE("/notices/:id", controllers.DeleteNotice)

			// 相册与资料
			admin.POST("/gallery", controllers.UploadGalleryImage)
			admin.DELETE("/gallery/:id", controllers.DeleteGalleryImage)
			admin.POST("/resources", controllers.UploadResource)
			admin.DELETE("/resources/:id", controllers.DeleteResource)

			// 成员
			admin.GET("/members", controllers.GetAdminMembers)
			admin.POST("/members", controllers.CreateMember)
			admin.PUT("/members/:id", controllers.UpdateMember)
			admin.DELETE("/members/:id", controllers.DeleteMember)

			// 咨询
			admin.GET("/inquiries", controllers.GetInquiries)
			admin.PUT("/inquiries/:id/resolve", controllers.ResolveInquiry)
		}

		// --- 仅 root_admin 的管理员账号管理 ---
		rootAdmin := apiV1.Group("/admin/admins")
		rootAdmin.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleRootAdmin))
		{
			rootAdmin.GET("", controllers.GetAdminList)
			rootAdmin.POST("", controllers.CreateAdmin)
			rootAdmin.PUT("/:id/status", controllers.UpdateAdminStatus)
		}
	}

	return r
}
