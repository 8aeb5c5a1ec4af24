// file: main.go
package main

import (
	"log"

	"RunClub/config"
	"RunClub/database"
	"RunClub/models"
	"RunClub/routes"
	"RunClub/services"
)

func main() {
	cfg := config.Load()

	database.Connect()
	database.MigrateTables()
	database.InitRedis()
	services.InitNotifier(cfg)

	seedRootAdmin(cfg)

	r := routes.SetupRouter()

	log.Println("Starting server on " + cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// seedRootAdmin 首次启动时创建超级管理员（库里没有任何 root_admin 且配置了初始密码）
func seedRootAdmin(cfg *config.Config) {
	var count int64
	if err := database.DB.Model(&models.AdminUser{}).Where("role = ?", models.RoleRootAdmin).Count(&count).Error; err != nil {
		log.Fatalf("Failed to check root admin: %v", err)
	}
	if count > 0 {
		return
	}
	if cfg.RootAdminPass == "" {
		log.Println("No root admin exists and ROOT_ADMIN_PASSWORD is not set, skipping seed.")
		return
	}

	root := models.AdminUser{
		Username: cfg.RootAdminUser,
		Password: cfg.RootAdminPass,
		Email:    cfg.RootAdminUser + "@runclub.local",
		FullName: "Root Admin",
		Role:     models.RoleRootAdmin,
	}
	if err := database.DB.Create(&root).Error; err != nil {
		log.Fatalf("Failed to seed root admin: %v", err)
	}
	log.Printf("Seeded root admin %q.", root.Username)
}
