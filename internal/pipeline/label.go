package pipeline

import "strings"

// Label is one category from the fixed event taxonomy.
type Label string

const (
	LabelEarnings   Label = "earnings"
	LabelGuidance   Label = "guidance"
	LabelContract   Label = "contract"
	LabelRegulation Label = "regulation"
	LabelLawsuit    Label = "lawsuit"
	LabelRecall     Label = "recall"
	LabelMacro      Label = "macro"
	LabelOther      Label = "other"
)

// Labels returns the full taxonomy in display order, fallback last.
func Labels() []Label {
	return []Label{
		LabelEarnings,
		LabelGuidance,
		LabelContract,
		LabelRegulation,
		LabelLawsuit,
		LabelRecall,
		LabelMacro,
		LabelOther,
	}
}

type labelRule struct {
	label    Label
	keywords []string
}

// Rules are evaluated in order, first match wins. Each keyword list
// carries both the Korean and the English terms for the concept since
// tracked coverage mixes domestic and foreign sources.
var labelRules = []labelRule{
	{LabelEarnings, []string{"실적", "영업이익", "순이익", "매출", "earnings", "revenue", "profit", "quarterly", "분기", "EPS"}},
	{LabelGuidance, []string{"가이던스", "전망", "guidance", "outlook", "forecast", "예상", "목표"}},
	{LabelContract, []string{"수주", "계약", "contract", "deal", "order", "공급", "supply"}},
	{LabelRegulation, []string{"규제", "regulation", "regulator", "FDA", "SEC", "승인", "approval", "인허가"}},
	{LabelLawsuit, []string{"소송", "재판", "lawsuit", "court", "antitrust", "반독점", "벌금", "fine"}},
	{LabelRecall, []string{"리콜", "사고", "recall", "defect", "결함", "incident", "accident", "안전"}},
	{LabelMacro, []string{"금리", "연준", "Fed", "interest rate", "인플레이션", "inflation", "CPI", "GDP", "한은"}},
}

// InferEventLabel returns the first rule whose keywords appear in the
// text (case-insensitive substring match), or LabelOther.
func InferEventLabel(text string) Label {
	lower := strings.ToLower(text)
	for _, rule := range labelRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.label
			}
		}
	}
	return LabelOther
}
