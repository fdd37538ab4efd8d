package utils

import (
	"strconv"
	"strings"
)

// FormatINR renders an integer rupee amount with Indian digit grouping,
// e.g. 123456 -> "₹1,23,456".
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "₹" + groupIndian(amount)
}

func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var out strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String() + "," + tail
}
