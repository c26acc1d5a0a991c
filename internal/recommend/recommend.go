// Package recommend filters and orders the product catalogue against the
// issues detected by a scan and the user's follow-up answers.
package recommend

import (
	"sort"

	"github.com/kozaktomas/skin-advisor/internal/catalog"
	"github.com/kozaktomas/skin-advisor/internal/config"
	"github.com/kozaktomas/skin-advisor/internal/constants"
)

// Request pairs detected issues with the user's follow-up answers.
// Missing fields are tolerated as empty; an unknown question id or answer
// value simply contributes no weight.
type Request struct {
	Issues  []string          `json:"issues"`
	Answers map[string]string `json:"answers"`
}

// Recommender scores catalogue products. It holds only read-only state and
// is safe for concurrent use.
type Recommender struct {
	catalog *catalog.Catalog
	rules   *config.RulesConfig
	topN    int
}

func NewRecommender(c *catalog.Catalog, rules *config.RulesConfig, topN int) *Recommender {
	if topN <= 0 {
		topN = constants.DefaultTopN
	}
	return &Recommender{
		catalog: c,
		rules:   rules,
		topN:    topN,
	}
}

// Recommend returns up to topN products whose concern tags intersect the
// requested issues, ordered by score descending and catalogue order for
// ties. Identical input always yields identical output. An empty result is
// a normal outcome, not an error.
func (r *Recommender) Recommend(req Request) []catalog.Product {
	type scored struct {
		product catalog.Product
		score   int
	}

	var candidates []scored
	for _, p := range r.catalog.Products() {
		base := overlap(p, req.Issues)
		if base == 0 {
			continue
		}
		candidates = append(candidates, scored{
			product: p,
			score:   base + r.answerBonus(p, req.Answers),
		})
	}

	// Stable sort keeps catalogue order for equal scores, which makes the
	// result order deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > r.topN {
		candidates = candidates[:r.topN]
	}

	result := make([]catalog.Product, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.product)
	}
	return result
}

// overlap counts how many of the requested issues the product targets.
func overlap(p catalog.Product, issues []string) int {
	count := 0
	for _, issue := range issues {
		if p.HasTag(issue) {
			count++
		}
	}
	return count
}

// answerBonus sums the configured weights of all answers whose question is
// linked to an issue the product targets.
func (r *Recommender) answerBonus(p catalog.Product, answers map[string]string) int {
	bonus := 0
	for questionID, value := range answers {
		q, ok := r.rules.QuestionByID(questionID)
		if !ok {
			continue
		}
		if !p.HasTag(q.Issue) {
			continue
		}
		bonus += q.Weights[value]
	}
	return bonus
}
