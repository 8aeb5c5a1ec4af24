// file: services/category_service.go
package services

import (
	"errors"
	"fmt"

	"RunClub/models"
	"gorm.io/gorm"
)

// ErrInvalidBibRange 区间参数不合法：必须成对设置且 bib_start <= bib_end
var ErrInvalidBibRange = errors.New("invalid BIB range: bib_start and bib_end must be set together and bib_start must not exceed bib_end")

// RangeShrinkError 新区间会把已发放的号码布甩在区间之外
type RangeShrinkError struct {
	Bib uint
}

func (e *RangeShrinkError) Error() string {
	return fmt.Sprintf("cannot update BIB range: BIB #%04d has already been issued outside the new range", e.Bib)
}

// ValidateBibRange 校验组别号码布区间。
// categoryID 为 0 表示新建组别，只做参数校验；
// 否则额外检查已发放的号码是否仍落在新区间内——
// 一旦发过号，区间只能放宽或保持，不允许收缩到已发号码之外。
func ValidateBibRange(db *gorm.DB, categoryID uint, bibStart, bibEnd *uint) error {
	if (bibStart == nil) != (bibEnd == nil) {
		return ErrInvalidBibRange
	}
	if bibStart != nil && *bibStart > *bibEnd {
		return ErrInvalidBibRange
	}
	if categoryID == 0 {
		return nil
	}

	query := db.Model(&models.Player{}).
		Where("category_id = ? AND bib_number IS NOT NULL", categoryID)
	if bibStart != nil {
		query = query.Where("bib_number < ? OR bib_number > ?", *bibStart, *bibEnd)
	}

	var stranded []uint
	if err := query.Limit(1).Pluck("bib_number", &stranded).Error; err != nil {
		return err
	}
	if len(stranded) > 0 {
		return &RangeShrinkError{Bib: stranded[0]}
	}
	return nil
}
