package pipeline

import "testing"

func TestInferEventLabel_FirstMatchWins(t *testing.T) {
	t.Parallel()

	// Matches both the earnings and guidance keyword lists; earnings
	// has higher rule priority.
	got := InferEventLabel("삼성전자 실적 발표와 함께 가이던스 상향")
	if got != LabelEarnings {
		t.Fatalf("expected earnings to win over guidance, got %q", got)
	}
}

func TestInferEventLabel_CaseInsensitive(t *testing.T) {
	t.Parallel()

	if got := InferEventLabel("Company reports record REVENUE for the year"); got != LabelEarnings {
		t.Fatalf("expected earnings for uppercase keyword, got %q", got)
	}
	if got := InferEventLabel("fda grants approval for biosimilar"); got != LabelRegulation {
		t.Fatalf("expected regulation for lowercase FDA, got %q", got)
	}
}

func TestInferEventLabel_BilingualKeywords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want Label
	}{
		{"대규모 수주 소식", LabelContract},
		{"signs multi-year supply contract", LabelContract},
		{"반독점 소송 제기", LabelLawsuit},
		{"Cybertruck recall announced", LabelRecall},
		{"한은 기준금리 동결", LabelMacro},
		{"Fed signals rate path", LabelMacro},
	}
	for _, tc := range cases {
		if got := InferEventLabel(tc.text); got != tc.want {
			t.Fatalf("InferEventLabel(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestInferEventLabel_FallbackOther(t *testing.T) {
	t.Parallel()

	if got := InferEventLabel("완전히 무관한 내용의 기사"); got != LabelOther {
		t.Fatalf("expected fallback label, got %q", got)
	}
	if got := InferEventLabel(""); got != LabelOther {
		t.Fatalf("expected fallback for empty text, got %q", got)
	}
}

func TestLabels_TaxonomyComplete(t *testing.T) {
	t.Parallel()

	labels := Labels()
	if len(labels) != 8 {
		t.Fatalf("expected 8 taxonomy labels, got %d", len(labels))
	}
	if labels[len(labels)-1] != LabelOther {
		t.Fatalf("expected fallback label last, got %q", labels[len(labels)-1])
	}
	for i, rule := range labelRules {
		if labels[i] != rule.label {
			t.Fatalf("taxonomy order diverges from rule priority at %d: %q vs %q", i, labels[i], rule.label)
		}
	}
}
