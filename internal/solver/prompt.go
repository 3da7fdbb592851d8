package solver

import "strings"

// SystemPrompt frames the model as a data-analysis solver. Questions are
// Korean statistics/data-analysis exam items with LaTeX math; the answer
// must be bare Python, not a fenced markdown block.
const SystemPrompt = `당신은 데이터분석 전문가입니다. 주어진 문제를 파이썬 코드로 풀어주세요.

규칙:
1. numpy, pandas, scipy, matplotlib, statsmodels 등 데이터분석 라이브러리를 활용하세요.
2. LaTeX 수식($...$, $$...$$)이 포함된 문제는 수식을 정확히 해석하여 풀이하세요.
3. 코드만 작성하세요. 마크다운 코드 펜스(` + "```python ... ```" + `)는 사용하지 마세요.
4. 필요한 import 문을 코드 상단에 포함하세요.
5. 중간 과정과 최종 결과를 print()로 출력하세요.
6. 그래프가 필요하면 matplotlib으로 시각화하고 plt.show()를 호출하세요.
7. 코드에 주석으로 풀이 과정을 간략히 설명하세요.`

// BuildUserPrompt wraps one question's markdown body for the model.
func BuildUserPrompt(questionMarkdown string) string {
	var sb strings.Builder
	sb.WriteString("다음 문제를 파이썬 코드로 풀어주세요:\n\n")
	sb.WriteString(questionMarkdown)
	return sb.String()
}
