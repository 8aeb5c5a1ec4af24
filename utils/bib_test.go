// file: utils/bib_test.go
package utils

import (
	"testing"
)

func TestFormatBib(t *testing.T) {
	cases := []struct {
		in   *uint
		want string
	}{
		{nil, "N/A"},
		{ptr(0), "0000"},
		{ptr(7), "0007"},
		{ptr(42), "0042"},
		{ptr(1000), "1000"},
		{ptr(12345), "12345"},
	}
	for _, tc := range cases {
		if got := FormatBib(tc.in); got != tc.want {
			t.Errorf("FormatBib(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func ptr(n uint) *uint {
	return &n
}
