package pipeline

// Clustering defaults. All three are tunable through Options and the
// service configuration; these values are the shipped behavior.
const (
	DefaultTimeWindowHours      = 12.0
	DefaultSimilarityThreshold  = 0.3
	DefaultTitleDedupeThreshold = 0.6
)

// Options carries the clustering and dedupe tunables. The zero value
// means "use defaults"; non-positive fields are replaced.
type Options struct {
	TimeWindowHours      float64
	SimilarityThreshold  float64
	TitleDedupeThreshold float64
}

func (o Options) withDefaults() Options {
	if o.TimeWindowHours <= 0 {
		o.TimeWindowHours = DefaultTimeWindowHours
	}
	if o.SimilarityThreshold <= 0 {
		o.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if o.TitleDedupeThreshold <= 0 {
		o.TitleDedupeThreshold = DefaultTitleDedupeThreshold
	}
	return o
}

// ClusterArticles partitions articles into event clusters. Articles
// are walked oldest first; each unassigned article seeds a cluster and
// pulls in every later unassigned article that is both inside the
// seed's time window and similar enough to the seed itself.
//
// Membership is single-link to the seed, not transitive: an article
// similar only to a non-seed member never joins. The output is a
// complete partition of the input; empty input yields no clusters.
func ClusterArticles(articles []Article, opts Options) [][]Article {
	if len(articles) == 0 {
		return nil
	}
	opts = opts.withDefaults()

	sorted := sortByPublishedAsc(articles)

	// Token sets are reused across the O(n^2) comparisons of one pass.
	tokens := make([][]string, len(sorted))
	for i, a := range sorted {
		tokens[i] = Tokenize(a.comparisonText())
	}

	assigned := make([]bool, len(sorted))
	var clusters [][]Article
	for i := range sorted {
		if assigned[i] {
			continue
		}

		cluster := []Article{sorted[i]}
		assigned[i] = true

		for j := i + 1; j < len(sorted); j++ {
			if assigned[j] {
				continue
			}
			if HoursDiff(sorted[i].PublishedAt, sorted[j].PublishedAt) > opts.TimeWindowHours {
				continue
			}
			if JaccardSimilarity(tokens[i], tokens[j]) >= opts.SimilarityThreshold {
				cluster = append(cluster, sorted[j])
				assigned[j] = true
			}
		}

		clusters = append(clusters, cluster)
	}
	return clusters
}
