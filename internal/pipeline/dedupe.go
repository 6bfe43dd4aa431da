package pipeline

import "strings"

// DedupeByURL keeps the first occurrence of every normalized URL in
// input order. Normalization lowercases and strips one trailing slash.
// Articles without a URL are always kept. Running the pass on its own
// output is a fixed point.
func DedupeByURL(articles []Article) []Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.URL == "" {
			out = append(out, a)
			continue
		}
		normalized := strings.TrimSuffix(strings.ToLower(a.URL), "/")
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, a)
	}
	return out
}

// DedupeByTitle collapses near-duplicate coverage. Articles are
// ordered newest first; the newest seeds the primary list, and each
// following article is demoted to additional when its similarity to
// any current primary meets the threshold. The comparison is only ever
// against the growing primary set, so an article similar to an
// additional but not to any primary still becomes a new primary.
func DedupeByTitle(articles []Article, threshold float64) (primary, additional []Article) {
	if len(articles) <= 1 {
		out := make([]Article, len(articles))
		copy(out, articles)
		return out, nil
	}

	sorted := sortByPublishedDesc(articles)
	primary = sorted[:1:1]
	for _, a := range sorted[1:] {
		isDupe := false
		for _, p := range primary {
			if ArticleSimilarity(a, p) >= threshold {
				isDupe = true
				break
			}
		}
		if isDupe {
			additional = append(additional, a)
		} else {
			primary = append(primary, a)
		}
	}
	return primary, additional
}
