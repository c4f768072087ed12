package logic

import (
	"cmp"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"gitjump/internal/domain"
)

// SubstringBonus lifts contiguous matches into their own score band, above
// anything a scattered subsequence match can reach.
const SubstringBonus = 1 << 20

// Scorer scores how well text matches query. ok is false when query is not
// an ordered subsequence of text.
type Scorer interface {
	Score(query, text string) (score int, ok bool)
}

// maxLeadingPenalty is the most sahilm/fuzzy subtracts for unmatched
// characters before the first match.
const maxLeadingPenalty = 15

// FuzzyScorer scores with sahilm/fuzzy, which rewards matches on the first
// character, after separators, on camel-case boundaries and on adjacent
// characters. Matching ignores case.
//
// sahilm scores go negative for sparse matches, so scores are shifted to make
// the weakest possible match of query in text score at least 1. Every match
// therefore passes a threshold of 1.
type FuzzyScorer struct{}

func (FuzzyScorer) Score(query, text string) (int, bool) {
	matches := fuzzy.Find(query, []string{text})
	if len(matches) == 0 {
		return 0, false
	}

	m := matches[0]
	// sahilm counts the unmatched penalty in bytes
	unmatched := len(text) - len(m.MatchedIndexes)
	score := m.Score + maxLeadingPenalty + unmatched + 1
	if strings.Contains(strings.ToLower(text), strings.ToLower(query)) {
		score += SubstringBonus
	}
	return score, true
}

// Ranker filters and orders items by relevance to a query
type Ranker struct {
	Scorer    Scorer
	Threshold int // items scoring below this are dropped
}

// NewRanker creates a ranker using the default fuzzy scorer
func NewRanker(threshold int) Ranker {
	return Ranker{Scorer: FuzzyScorer{}, Threshold: threshold}
}

type scoredItem struct {
	item  domain.Item
	score int
}

// Rank returns the items matching query, best first. Equal scores keep their
// order in items. An empty query returns items as is. items is never modified.
func (r Ranker) Rank(query string, items []domain.Item) []domain.Item {
	if query == "" {
		return items
	}

	scored := make([]scoredItem, 0, len(items))
	for _, item := range items {
		score, ok := r.Scorer.Score(query, item.Name)
		if !ok || score < r.Threshold {
			continue
		}
		scored = append(scored, scoredItem{item: item, score: score})
	}

	slices.SortStableFunc(scored, func(a, b scoredItem) int {
		return cmp.Compare(b.score, a.score)
	})

	ranked := make([]domain.Item, len(scored))
	for i, s := range scored {
		ranked[i] = s.item
	}
	return ranked
}
