// file: services/bib_service_test.go
package services

import (
	"errors"
	"strings"
	"testing"

	"RunClub/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// 依次发号必须从 BibStart 开始、严格递增、发完后确定性报错
func TestAllocateBibSequential(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "10K", uintPtr(1), uintPtr(3))

	for want := uint(1); want <= 3; want++ {
		bib, err := AllocateBib(db, category.ID)
		if err != nil {
			t.Fatalf("allocate #%d: %v", want, err)
		}
		if bib != want {
			t.Fatalf("allocate #%d: got %d", want, bib)
		}
		// 分配结果由调用方落库，这里模拟审核流程写回
		p := seedPlayer(t, db, event.ID, &category.ID, "Runner", "runner@example.com")
		if err := db.Model(&p).Update("bib_number", bib).Error; err != nil {
			t.Fatal(err)
		}
	}

	// 区间发完后每次调用都必须返回 RangeExhausted，携带组别名和上界
	for i := 0; i < 2; i++ {
		_, err := AllocateBib(db, category.ID)
		var exhausted *RangeExhaustedError
		if !errors.As(err, &exhausted) {
			t.Fatalf("expected RangeExhaustedError, got %v", err)
		}
		if exhausted.CategoryTitle != "10K" || exhausted.BibEnd != 3 {
			t.Fatalf("unexpected error detail: %+v", exhausted)
		}
	}
}

func TestAllocateBibSingleSlot(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "VIP", uintPtr(5), uintPtr(5))

	bib, err := AllocateBib(db, category.ID)
	if err != nil {
		t.Fatal(err)
	}
	if bib != 5 {
		t.Fatalf("got %d, want 5", bib)
	}
	p := seedPlayer(t, db, event.ID, &category.ID, "Solo", "solo@example.com")
	if err := db.Model(&p).Update("bib_number", bib).Error; err != nil {
		t.Fatal(err)
	}

	_, err = AllocateBib(db, category.ID)
	var exhausted *RangeExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected RangeExhaustedError, got %v", err)
	}
}

func TestAllocateBibNoRangeConfigured(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "Fun Run", nil, nil)

	_, err := AllocateBib(db, category.ID)
	if !errors.Is(err, ErrNoRangeConfigured) {
		t.Fatalf("expected ErrNoRangeConfigured, got %v", err)
	}
}

func TestAllocateBibCategoryNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := AllocateBib(db, 9999)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

// 生产方言（MySQL）的发号查询必须带 FOR UPDATE 行锁，SQLite 必须跳过
func TestLockForAllocationByDialect(t *testing.T) {
	var category models.Category

	sqliteDB := setupTestDB(t)
	stmt := lockForAllocation(sqliteDB.Session(&gorm.Session{DryRun: true})).First(&category, 1).Statement
	if strings.Contains(stmt.SQL.String(), "FOR UPDATE") {
		t.Fatalf("sqlite query must not carry a lock clause: %s", stmt.SQL.String())
	}

	// 只生成 SQL 不建连：跳过版本探测和自动 Ping
	mysqlDB, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "runclub:runclub@tcp(127.0.0.1:3306)/runclub?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Fatal(err)
	}
	stmt = lockForAllocation(mysqlDB).First(&category, 1).Statement
	if !strings.Contains(stmt.SQL.String(), "FOR UPDATE") {
		t.Fatalf("mysql query must carry FOR UPDATE: %s", stmt.SQL.String())
	}
}

// 区间外的历史号码（例如区间被放宽之前发出的）不参与 max 计算
func TestAllocateBibIgnoresNumbersOutsideRange(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "10K", uintPtr(100), uintPtr(110))

	stray := seedPlayer(t, db, event.ID, &category.ID, "Stray", "stray@example.com")
	if err := db.Model(&stray).Update("bib_number", 999).Error; err != nil {
		t.Fatal(err)
	}

	bib, err := AllocateBib(db, category.ID)
	if err != nil {
		t.Fatal(err)
	}
	if bib != 100 {
		t.Fatalf("got %d, want 100", bib)
	}
}

// 区间放宽后应继续从现有最大号码 +1 发号
func TestAllocateBibAfterRangeWidened(t *testing.T) {
	db := setupTestDB(t)
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "5K", uintPtr(1), uintPtr(1))

	bib, err := AllocateBib(db, category.ID)
	if err != nil {
		t.Fatal(err)
	}
	p := seedPlayer(t, db, event.ID, &category.ID, "First", "first@example.com")
	if err := db.Model(&p).Update("bib_number", bib).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := AllocateBib(db, category.ID); err == nil {
		t.Fatal("expected exhaustion before widening")
	}

	if err := db.Model(&models.Category{}).Where("id = ?", category.ID).Update("bib_end", 2).Error; err != nil {
		t.Fatal(err)
	}

	bib, err = AllocateBib(db, category.ID)
	if err != nil {
		t.Fatal(err)
	}
	if bib != 2 {
		t.Fatalf("got %d, want 2", bib)
	}
}
