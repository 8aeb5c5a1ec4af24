// file: services/event_cache_service.go
package services

import (
	"encoding/json"
	"log"
	"time"

	"RunClub/database"
	"RunClub/models"
	"gorm.io/gorm"
)

const (
	publicEventsKey = "events:public"
	publicEventsTTL = 5 * time.Minute
)

// GetPublicEvents 查询公开页面的赛事列表（已发布且启用，附带启用的组别），
// 优先走 Redis 缓存，未命中则回源数据库并写缓存
func GetPublicEvents(db *gorm.DB) ([]models.Event, error) {
	if database.RDB != nil {
		if cached, err := database.RDB.Get(database.Ctx, publicEventsKey).Result(); err == nil {
			var events []models.Event
			if json.Unmarshal([]byte(cached), &events) == nil {
				return events, nil
			}
		}
	}

	var events []models.Event
	err := db.Where("is_publish = ? AND is_active = ?", true, true).
		Preload("Categories", "is_active = ?", true).
		Order("start_date asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	if database.RDB != nil {
		if data, err := json.Marshal(events); err == nil {
			database.RDB.Set(database.Ctx, publicEventsKey, data, publicEventsTTL)
		}
	}
	return events, nil
}

// InvalidateEventCache 管理端改动赛事/组别后清掉公开列表缓存
func InvalidateEventCache() {
	if database.RDB == nil {
		return
	}
	if err := database.RDB.Del(database.Ctx, publicEventsKey).Err(); err != nil {
		log.Printf("Failed to invalidate event cache: %v", err)
	}
}
