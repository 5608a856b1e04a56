package templates

import (
	"strconv"
	"strings"
)

// typeParams renders "T0, T1, ..." for the given arity.
func typeParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("T")
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

func noun(count int) string {
	if count == 1 {
		return "dependency"
	}
	return "dependencies"
}
