package templates

import (
	"strconv"
	"strings"
)

// typeParams renders "T0, T1, ..." for n source signals.
func typeParams(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("T")
		sb.WriteString(strconv.Itoa(i))
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// sigParams renders "s0 Signal[T0], s1 Signal[T1], ...".
func sigParams(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		idx := strconv.Itoa(i)
		sb.WriteString("s")
		sb.WriteString(idx)
		sb.WriteString(" Signal[T")
		sb.WriteString(idx)
		sb.WriteString("]")
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
