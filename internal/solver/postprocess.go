package solver

import (
	"regexp"
	"strings"
)

// Models wrap answers in ```python ... ``` fences despite being told not
// to; strip one outer fence when present.
var codeFenceRe = regexp.MustCompile("(?s)^```(?:python|py)?\\s*\\n(.*?)```\\s*$")

// StripCodeFences removes a surrounding markdown code fence, if any, and
// trims whitespace.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if m := codeFenceRe.FindStringSubmatch(s); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return s
}

// FailureCode renders a placeholder code cell body for a question whose
// solution could not be generated.
func FailureCode(err error) string {
	return "# 풀이 생성 실패: " + err.Error()
}
