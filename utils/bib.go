// file: utils/bib.go
package utils

import (
	"fmt"
)

// FormatBib 将号码布编号左补零到 4 位（7 → "0007"），
// 未分配号码（nil）返回 "N/A"
func FormatBib(n *uint) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprintf("%04d", *n)
}
