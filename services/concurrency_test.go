//go:build testutil
// +build testutil

// file: services/concurrency_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"RunClub/models"
	tc "github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// startMySQL 起一个一次性的 MySQL 容器并完成建表
func startMySQL(t *testing.T) *gorm.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	container, err := tcmysql.RunContainer(ctx,
		tc.WithImage("mysql:8.0"),
		tcmysql.WithDatabase("runclub"),
		tcmysql.WithUsername("runclub"),
		tcmysql.WithPassword("runclub"),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		_ = container.Terminate(stopCtx)
	})

	dsn, err := container.ConnectionString(ctx, "parseTime=true")
	if err != nil {
		t.Fatal(err)
	}

	db, err := gorm.Open(gmysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&models.Event{}, &models.Category{}, &models.Player{}); err != nil {
		t.Fatal(err)
	}
	return db
}

// 同一组别的并发审核必须被组别行锁串行化：
// 号码不重复、不越界、发满即止，超出区间的请求确定性地拿到 RangeExhausted
func TestConcurrentVerificationAssignsDistinctBibs(t *testing.T) {
	db := startMySQL(t)
	event := seedEvent(t, db)
	category := seedCategory(t, db, event.ID, "10K", uintPtr(1), uintPtr(5))

	const runners = 8
	players := make([]models.Player, runners)
	for i := range players {
		players[i] = seedPlayer(t, db, event.ID, &category.ID,
			fmt.Sprintf("Runner %d", i), fmt.Sprintf("runner%d@example.com", i))
	}

	var wg sync.WaitGroup
	errs := make([]error, runners)
	for i := range players {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = VerifyPlayer(db, nil, players[i].ID)
		}(i)
	}
	wg.Wait()

	exhausted := 0
	for i, err := range errs {
		if err == nil {
			continue
		}
		var rangeErr *RangeExhaustedError
		if errors.As(err, &rangeErr) {
			exhausted++
			continue
		}
		t.Fatalf("verify #%d: unexpected error: %v", i, err)
	}
	if exhausted != runners-5 {
		t.Fatalf("expected %d exhausted verifications, got %d", runners-5, exhausted)
	}

	// 发出的号码必须恰好是 1..5，无重复、无空洞、无越界
	var bibs []uint
	err := db.Model(&models.Player{}).
		Where("category_id = ? AND bib_number IS NOT NULL", category.ID).
		Order("bib_number asc").
		Pluck("bib_number", &bibs).Error
	if err != nil {
		t.Fatal(err)
	}
	if len(bibs) != 5 {
		t.Fatalf("expected 5 assigned bibs, got %d: %v", len(bibs), bibs)
	}
	for i, bib := range bibs {
		if bib != uint(i+1) {
			t.Fatalf("expected dense sequence 1..5, got %v", bibs)
		}
	}
}
