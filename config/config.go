// file: config/config.go
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 保存全部运行时配置，启动时从环境变量加载
type Config struct {
	ListenAddr string
	MySQLDSN   string
	RedisAddr  string
	RedisPass  string
	RedisDB    int
	JWTSecret  string
	UploadDir  string

	// SMTP 通知配置，留空则禁用邮件通知
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	// 首次启动时的超级管理员账号
	RootAdminUser string
	RootAdminPass string
}

var C *Config

// Load 读取 .env（如果存在）并解析环境变量
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	C = &Config{
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
		MySQLDSN:   mustEnv("MYSQL_DSN"),
		RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:    getenvInt("REDIS_DB", 0),
		JWTSecret:  mustEnv("JWT_SECRET"),
		UploadDir:  getenv("UPLOAD_DIR", "./uploads"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getenvInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASSWORD"),
		MailFrom: getenv("MAIL_FROM", "noreply@runclub.local"),

		RootAdminUser: getenv("ROOT_ADMIN_USER", "root"),
		RootAdminPass: os.Getenv("ROOT_ADMIN_PASSWORD"),
	}
	return C
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("required env %s is empty", k)
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("env %s must be an integer, got %q", k, v)
	}
	return n
}
