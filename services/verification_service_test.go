// file: services/verification_service_test.go
package services

import (
	"errors"
	"testing"

	"RunClub/models"
)

func TestVerifyAssignsSequentialBibs(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "10K", uintPtr(1), uintPtr(3))

	playerA := seedPlayer(t, db, event.ID, &category.ID, "Alice", "alice@example.com")
	playerB := seedPlayer(t, db, event.ID, &category.ID, "Bob", "bob@example.com")
	playerC := seedPlayer(t, db, event.ID, &category.ID, "Cara", "cara@example.com")
	playerD := seedPlayer(t, db, event.ID, &category.ID, "Dan", "dan@example.com")

	for i, tc := range []struct {
		id   uint
		want uint
	}{
		{playerA.ID, 1},
		{playerB.ID, 2},
		{playerC.ID, 3},
	} {
		verified, err := VerifyPlayer(db, notifier, tc.id)
		if err != nil {
			t.Fatalf("verify #%d: %v", i+1, err)
		}
		if verified.VerificationStatus != models.VerificationVerified {
			t.Fatalf("verify #%d: status %s", i+1, verified.VerificationStatus)
		}
		if verified.BibNumber == nil || *verified.BibNumber != tc.want {
			t.Fatalf("verify #%d: bib %v, want %d", i+1, verified.BibNumber, tc.want)
		}
		if verified.VerifiedAt == nil {
			t.Fatalf("verify #%d: verified_at not set", i+1)
		}
	}

	// 第四个人发不出号：整个审核必须回滚，选手保持 pending
	_, err := VerifyPlayer(db, notifier, playerD.ID)
	var exhausted *RangeExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected RangeExhaustedError, got %v", err)
	}

	var reloaded models.Player
	if err := db.First(&reloaded, playerD.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.VerificationStatus != models.VerificationPending || reloaded.BibNumber != nil {
		t.Fatalf("player D must stay pending without a BIB, got %s / %v", reloaded.VerificationStatus, reloaded.BibNumber)
	}

	// 号码在组别内不允许重复
	var count int64
	if err := db.Model(&models.Player{}).
		Where("category_id = ? AND bib_number IS NOT NULL", category.ID).
		Distinct("bib_number").Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("expected 3 distinct bibs, got %d", count)
	}

	if len(notifier.sent) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(notifier.sent))
	}
}

func TestVerifyWithoutRangePassesThrough(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "Fun Run", nil, nil)
	player := seedPlayer(t, db, event.ID, &category.ID, "Eve", "eve@example.com")

	verified, err := VerifyPlayer(db, nil, player.ID)
	if err != nil {
		t.Fatal(err)
	}
	if verified.VerificationStatus != models.VerificationVerified {
		t.Fatalf("status %s", verified.VerificationStatus)
	}
	if verified.BibNumber != nil {
		t.Fatalf("expected nil bib, got %d", *verified.BibNumber)
	}
}

func TestVerifyWithoutCategory(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	player := seedPlayer(t, db, event.ID, nil, "Finn", "finn@example.com")

	verified, err := VerifyPlayer(db, nil, player.ID)
	if err != nil {
		t.Fatal(err)
	}
	if verified.BibNumber != nil {
		t.Fatal("player without category must not receive a BIB")
	}
}

func TestVerifyAlreadyVerified(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "10K", uintPtr(1), uintPtr(10))
	player := seedPlayer(t, db, event.ID, &category.ID, "Gail", "gail@example.com")

	first, err := VerifyPlayer(db, nil, player.ID)
	if err != nil {
		t.Fatal(err)
	}

	_, err = VerifyPlayer(db, nil, player.ID)
	if !errors.Is(err, ErrAlreadyVerified) {
		t.Fatalf("expected ErrAlreadyVerified, got %v", err)
	}

	// 重复审核不得重新发号或覆盖现有号码
	var reloaded models.Player
	if err := db.First(&reloaded, player.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.BibNumber == nil || *reloaded.BibNumber != *first.BibNumber {
		t.Fatalf("bib changed: %v -> %v", first.BibNumber, reloaded.BibNumber)
	}
}

func TestVerifyPlayerNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := VerifyPlayer(db, nil, 12345)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestVerifyDanglingCategory(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	dangling := uint(777)
	player := seedPlayer(t, db, event.ID, &dangling, "Hana", "hana@example.com")

	_, err := VerifyPlayer(db, nil, player.ID)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	var reloaded models.Player
	if err := db.First(&reloaded, player.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.VerificationStatus != models.VerificationPending {
		t.Fatalf("player must stay pending, got %s", reloaded.VerificationStatus)
	}
}

func TestRejectClearsBibAndRecordsReason(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "10K", uintPtr(1), uintPtr(10))
	player := seedPlayer(t, db, event.ID, &category.ID, "Ivan", "ivan@example.com")

	if _, err := VerifyPlayer(db, nil, player.ID); err != nil {
		t.Fatal(err)
	}

	rejected, err := RejectPlayer(db, notifier, player.ID, "Invalid document")
	if err != nil {
		t.Fatal(err)
	}
	if rejected.VerificationStatus != models.VerificationRejected {
		t.Fatalf("status %s", rejected.VerificationStatus)
	}
	if rejected.BibNumber != nil || rejected.VerifiedAt != nil {
		t.Fatal("reject must clear bib_number and verified_at")
	}
	if rejected.RejectionReason == nil || *rejected.RejectionReason != "Invalid document" {
		t.Fatalf("reason %v", rejected.RejectionReason)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != KindRejected {
		t.Fatalf("expected one rejected notification, got %v", notifier.sent)
	}
}

// rejected 可以重新走审核，且重新发号不回收旧号码（严格递增）
func TestRejectedPlayerCanBeReverified(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "10K", uintPtr(1), uintPtr(10))
	playerA := seedPlayer(t, db, event.ID, &category.ID, "Jo", "jo@example.com")
	playerB := seedPlayer(t, db, event.ID, &category.ID, "Kim", "kim@example.com")

	if _, err := VerifyPlayer(db, nil, playerA.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := VerifyPlayer(db, nil, playerB.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := RejectPlayer(db, nil, playerA.ID, "Wrong category"); err != nil {
		t.Fatal(err)
	}

	reverified, err := VerifyPlayer(db, nil, playerA.ID)
	if err != nil {
		t.Fatal(err)
	}
	if reverified.BibNumber == nil || *reverified.BibNumber != 3 {
		t.Fatalf("expected bib 3 on re-verification, got %v", reverified.BibNumber)
	}
	if reverified.RejectionReason != nil {
		t.Fatal("re-verification must clear the rejection reason")
	}
}

// 通知失败绝不回滚已落库的状态流转（verify 和 reject 两条路径）
func TestNotificationFailureDoesNotRevertTransition(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{fail: true}
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "10K", uintPtr(1), uintPtr(10))
	playerA := seedPlayer(t, db, event.ID, &category.ID, "Lea", "lea@example.com")
	playerB := seedPlayer(t, db, event.ID, &category.ID, "Max", "max@example.com")

	if _, err := VerifyPlayer(db, notifier, playerA.ID); err != nil {
		t.Fatalf("verify must succeed despite notifier failure: %v", err)
	}
	var verified models.Player
	if err := db.First(&verified, playerA.ID).Error; err != nil {
		t.Fatal(err)
	}
	if verified.VerificationStatus != models.VerificationVerified || verified.BibNumber == nil {
		t.Fatal("verification was not persisted")
	}

	if _, err := RejectPlayer(db, notifier, playerB.ID, "Blurry photo"); err != nil {
		t.Fatalf("reject must succeed despite notifier failure: %v", err)
	}
	var rejected models.Player
	if err := db.First(&rejected, playerB.ID).Error; err != nil {
		t.Fatal(err)
	}
	if rejected.VerificationStatus != models.VerificationRejected {
		t.Fatal("rejection was not persisted")
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("expected both notification attempts, got %d", len(notifier.sent))
	}
}
