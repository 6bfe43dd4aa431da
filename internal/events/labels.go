package events

import "github.com/misodaily/newsdesk/internal/pipeline"

// labelNames maps taxonomy labels to their Korean display names.
var labelNames = map[pipeline.Label]string{
	pipeline.LabelEarnings:   "실적",
	pipeline.LabelGuidance:   "가이던스",
	pipeline.LabelContract:   "수주",
	pipeline.LabelRegulation: "규제",
	pipeline.LabelLawsuit:    "소송",
	pipeline.LabelRecall:     "리콜/사고",
	pipeline.LabelMacro:      "매크로",
	pipeline.LabelOther:      "기타",
}

// LabelDisplayName returns the Korean display name for a label,
// falling back to the label itself for values outside the taxonomy.
func LabelDisplayName(label pipeline.Label) string {
	if name, ok := labelNames[label]; ok {
		return name
	}
	return string(label)
}
