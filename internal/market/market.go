// Package market is the security-master list of tracked equities.
// The pipeline treats (market, ticker) as an opaque key; this package
// owns the display data and the keyword routing used to direct fetched
// articles to a ticker.
package market

import "strings"

// Stock is one tracked equity.
type Stock struct {
	Market   string `json:"market"`
	Ticker   string `json:"ticker"`
	Exchange string `json:"exchange"`
	NameKo   string `json:"name_ko"`
	NameEn   string `json:"name_en"`

	// Extra routing aliases beyond the two display names.
	Aliases []string `json:"-"`
}

// Keywords returns every term that routes an article to this stock.
func (s Stock) Keywords() []string {
	out := make([]string, 0, 2+len(s.Aliases))
	if s.NameKo != "" {
		out = append(out, s.NameKo)
	}
	if s.NameEn != "" {
		out = append(out, s.NameEn)
	}
	out = append(out, s.Aliases...)
	return out
}

// Matches reports whether the text mentions this stock by any of its
// keywords (case-insensitive substring).
func (s Stock) Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range s.Keywords() {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Find resolves a (market, ticker) key. The second return is false for
// untracked equities; callers own the not-found presentation.
func Find(market, ticker string) (Stock, bool) {
	for _, s := range top50 {
		if s.Market == market && s.Ticker == ticker {
			return s, true
		}
	}
	return Stock{}, false
}

// ByMarket lists tracked stocks for one market ("kr" or "us"); any
// other value lists everything.
func ByMarket(market string) []Stock {
	if market != "kr" && market != "us" {
		return All()
	}
	var out []Stock
	for _, s := range top50 {
		if s.Market == market {
			out = append(out, s)
		}
	}
	return out
}

// All returns the full tracked list in master order.
func All() []Stock {
	out := make([]Stock, len(top50))
	copy(out, top50)
	return out
}
