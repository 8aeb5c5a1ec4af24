// file: database/connect.go
package database

import (
	"log"
	"time"

	"RunClub/config"
	"RunClub/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	DB, err = gorm.Open(mysql.Open(config.C.MySQLDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	// 连接池参数：空闲 10 / 最大 100 / 存活 1 小时，
	// 存活时间用于规避 MySQL 的 wait_timeout 断连问题
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 启动时自动建表/补列
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.AdminUser{},
		&models.Event{},
		&models.Category{},
		&models.Player{},
		&models.Notice{},
		&models.GalleryImage{},
		&models.Resource{},
		&models.Member{},
		&models.ContactInquiry{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
