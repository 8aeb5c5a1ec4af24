// file: services/verification_service.go
package services

import (
	"errors"
	"log"
	"time"

	"RunClub/models"
	"RunClub/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrPlayerNotFound 选手不存在
	ErrPlayerNotFound = errors.New("player not found")
	// ErrAlreadyVerified 选手已通过审核，不允许重复发号
	ErrAlreadyVerified = errors.New("player is already verified")
)

// VerifyPlayer 审核通过：pending/rejected → verified。
// 有组别则在同一事务内分配号码布并随选手一起落库；
// 组别未配置区间时照常通过，号码为 NULL；区间发完则整个事务回滚，选手状态不变。
// 事务提交之后才发送通知邮件，发送失败只记日志，绝不回滚审核结果。
func VerifyPlayer(db *gorm.DB, notifier Notifier, playerID uint) (*models.Player, error) {
	var player models.Player

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Event").Preload("Category").First(&player, playerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		switch player.VerificationStatus {
		case models.VerificationVerified:
			return ErrAlreadyVerified
		case models.VerificationPending, models.VerificationRejected:
			// rejected 允许重新走审核，重新尝试分配号码
		default:
			return errors.New("unknown verification status: " + string(player.VerificationStatus))
		}

		var assigned *uint
		if player.CategoryID != nil {
			bib, err := AllocateBib(tx, *player.CategoryID)
			switch {
			case err == nil:
				assigned = &bib
			case errors.Is(err, ErrNoRangeConfigured):
				// 该组别不发号，审核照常通过
				assigned = nil
			default:
				return err
			}
		}

		now := time.Now()
		player.VerificationStatus = models.VerificationVerified
		player.BibNumber = assigned
		player.VerifiedAt = &now
		player.RejectionReason = nil
		return tx.Omit(clause.Associations).Save(&player).Error
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(notifier, KindVerified, &player, "")
	return &player, nil
}

// RejectPlayer 审核驳回：清空号码布和审核时间并记录驳回原因。
// 先落库后通知——通知失败不能吞掉已经做出的驳回决定。
func RejectPlayer(db *gorm.DB, notifier Notifier, playerID uint, reason string) (*models.Player, error) {
	var player models.Player

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Event").Preload("Category").First(&player, playerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		player.VerificationStatus = models.VerificationRejected
		player.BibNumber = nil
		player.VerifiedAt = nil
		player.RejectionReason = &reason
		return tx.Omit(clause.Associations).Save(&player).Error
	})
	if err != nil {
		return nil, err
	}

	dispatchNotification(notifier, KindRejected, &player, reason)
	return &player, nil
}

// dispatchNotification 组装通知内容并尽力而为地发送
func dispatchNotification(notifier Notifier, kind NotificationKind, player *models.Player, reason string) {
	if notifier == nil {
		log.Println("Notification dispatcher not configured, skipping notification.")
		return
	}

	payload := NotificationPayload{
		PlayerName:    player.FullName,
		Email:         player.Email,
		BibLabel:      utils.FormatBib(player.BibNumber),
		CategoryTitle: "N/A",
		Reason:        reason,
	}
	if player.Event != nil {
		payload.EventTitle = player.Event.Title
		payload.EventDate = player.Event.StartDate.Format("2006-01-02")
	}
	if player.Category != nil {
		payload.CategoryTitle = player.Category.Title
	}

	if err := notifier.Send(kind, payload); err != nil {
		log.Printf("Failed to send %s notification to %s: %v", kind, player.Email, err)
	}
}
