// file: services/bib_service.go
package services

import (
	"database/sql"
	"errors"
	"fmt"

	"RunClub/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrCategoryNotFound 组别不存在（或报名数据悬空引用）
	ErrCategoryNotFound = errors.New("category not found")
	// ErrNoRangeConfigured 组别未配置号码布区间，调用方按"不分配号码"处理，不算失败
	ErrNoRangeConfigured = errors.New("no BIB range configured for category")
)

// RangeExhaustedError 号码布区间已发完
type RangeExhaustedError struct {
	CategoryTitle string
	BibEnd        uint
}

func (e *RangeExhaustedError) Error() string {
	return fmt.Sprintf("BIB range exhausted for category %s. Max: %d", e.CategoryTitle, e.BibEnd)
}

// lockForAllocation 给发号查询加 SELECT ... FOR UPDATE 排他锁。
// SQLite 不支持该语法（测试环境单写入者，无需行锁），其余方言照常加锁
func lockForAllocation(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// AllocateBib 在调用方事务 tx 内计算组别的下一个可用号码布编号。
// 先对组别行加排他锁，同一组别的并发审核会在此串行化，
// 避免两次读到相同的当前最大值而发出重复号码。
// 号码本身不在这里落库，由调用方在同一事务内写回 Player。
func AllocateBib(tx *gorm.DB, categoryID uint) (uint, error) {
	var category models.Category

	if err := lockForAllocation(tx).First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCategoryNotFound
		}
		return 0, err
	}

	if !category.HasBibRange() {
		return 0, ErrNoRangeConfigured
	}

	// 扫描区间内已发放的最大号码，下一个号码 = max + 1（无人持号则从 BibStart 起）
	var maxBib sql.NullInt64
	err := tx.Model(&models.Player{}).
		Where("category_id = ? AND bib_number IS NOT NULL AND bib_number BETWEEN ? AND ?",
			categoryID, *category.BibStart, *category.BibEnd).
		Select("MAX(bib_number)").
		Scan(&maxBib).Error
	if err != nil {
		return 0, err
	}

	next := *category.BibStart
	if maxBib.Valid {
		next = uint(maxBib.Int64) + 1
	}

	if next > *category.BibEnd {
		return 0, &RangeExhaustedError{CategoryTitle: category.Title, BibEnd: *category.BibEnd}
	}
	return next, nil
}
